// Package config loads and validates plinth configuration.
//
// Configuration lives in a single TOML file. Load applies repository
// defaults first, then overlays the file (when present), expands home
// directory references, and validates the result. A sample configuration
// is embedded for `plinth config init`.
package config
