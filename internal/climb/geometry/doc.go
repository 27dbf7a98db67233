// Package geometry turns a normalized move set into renderer-ready ring
// geometry. For each ring index it synthesizes a radius profile around the
// circle (dynamics enhancement, organic noise, crux-proximity boost, liquid
// waves, depth harmonics), fits a closed centripetal Catmull-Rom curve
// through the finite sample points, and attaches per-vertex colors and a
// per-ring opacity.
//
// Responsibilities:
//   - per-ring radius synthesis from a RingSpec and a move set
//   - closed-curve fitting and resampling at the configured resolution
//   - vertex color blending toward the crux palette and opacity falloff
//
// Degenerate rings (non-positive base radius, fewer than three finite
// points) are skipped and counted, never fatal. Synthesis is a pure
// function of its inputs.
//
// Dependency rule: geometry may depend on climb and config; it must never
// import analysis or anim.
package geometry
