// Package analysis owns the signal stage of the pipeline: smoothing,
// adaptive-threshold peak detection, per-move metrics, move-type
// classification, and dynamics normalization.
//
// Responsibilities: turning a sanitized Session into an immutable
// MoveSet, plus a Run record that captures the parameters of the pass
// for reproducibility.
//
// Dependency rule: analysis may depend on climb and config, never on
// geometry or anim.
package analysis
