// Package infer turns a path's token bag into a confident, or
// deliberately null, metadata assignment.
//
// The engine aggregates weighted evidence per candidate franchise,
// applies suppression and bias rules (tabletop gate, weak-form and
// ambiguous-alias gating, mount and system consistency, path-segment
// weighting), and only assigns when a candidate clears a fixed
// confidence threshold. Anything that cannot resolve confidently leaves
// the field empty and appends a qualitative warning: under-assignment is
// always preferred to a false positive.
//
// Inference is a pure function of the token set and the vocabulary
// snapshot, so identical inputs always produce identical assignments and
// re-running over enriched records is safe.
package infer
