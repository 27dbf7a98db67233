// Package anim drives the analysis and geometry stages from a renderer's
// update loop. It decides, per settings transition, whether geometry must
// be structurally rebuilt, only have its material refreshed, or be left
// alone; it re-runs analysis when the session content or an analysis
// parameter changes; and it produces per-frame perturbed geometry as a
// pure displacement of the cached baseline, so animation never drifts.
//
// Responsibilities:
//   - settings-change classification (none / material / structural)
//   - pipeline orchestration and baseline ownership
//   - pure per-frame displacement of baseline geometry
//
// The controller is single-threaded by contract: the renderer's callback
// drives it, and no method blocks or spawns goroutines.
//
// Dependency rule: anim may depend on climb, analysis, geometry, config,
// and timeutil; nothing in those packages may import anim.
package anim
