// Package vocab builds the immutable vocabulary snapshot that drives
// classification and scoring.
//
// Curated YAML documents (franchise manifests and generic alias lists) are
// loaded once per run and materialized into alias-to-canonical lookup
// tables annotated with per-franchise strength tiers. The resulting
// Snapshot is read-only and safe to share across any number of concurrent
// readers. Unparseable entries are skipped with a logged warning; a
// partial or even empty snapshot is valid.
package vocab
