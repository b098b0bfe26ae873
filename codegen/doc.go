// Package codegen builds the immutable service model from captured method
// declarations.
//
// Build runs the extraction pipeline in a fixed order: signature capture,
// context-collision resolution, parameter classification, return-shape
// analysis, naming-convention inference and cross-backend validation. The
// pipeline is a single-pass synchronous transformation; any detected
// inconsistency aborts the block and reports every independent diagnostic it
// found rather than stopping at the first.
package codegen
