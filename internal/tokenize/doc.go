// Package tokenize turns path strings into normalized lexical tokens.
//
// Every hierarchy component is tokenized, not just the filename stem,
// because identity-bearing names (artist and collection labels) often live
// in directory names. All functions are pure: the same path always yields
// the same tokens, and empty input yields no tokens rather than an error.
//
// The package also hosts the token expansion helpers (case/digit boundary
// splitting, vocabulary-guided segmentation of glued words, and bigram
// synthesis) plus the scale pattern detectors.
package tokenize
