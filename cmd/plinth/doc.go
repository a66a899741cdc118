// Package main hosts the plinth CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into catalog
// operations: registering library paths, running the enrichment pipeline in
// dry-run or apply mode, inspecting records, and checking the vocabulary.
// It centralizes configuration resolution and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
