package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/crux.report/internal/climb"
)

// NormalizeDynamics maps every move's raw speed proxy onto a shared
// [0,1] scale. Moves without a usable raw value (the synthetic start
// move, or a peak whose speed window was degenerate) take a positional
// fallback before the scale is fitted, so they land mid-range instead
// of pinning the minimum. A flat set normalizes to 0.5 uniformly.
//
// Normalization is recomputed on every analysis pass; it is never
// cached across move sets.
func NormalizeDynamics(moves climb.MoveSet) {
	n := len(moves)
	if n == 0 {
		return
	}

	raw := make([]float64, n)
	for i, mv := range moves {
		v := mv.AvgSpeed
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0.3 + 0.4*(float64(i)/float64(n))
		}
		raw[i] = v
	}

	lo := floats.Min(raw)
	hi := floats.Max(raw)
	if hi == lo {
		for i := range moves {
			moves[i].Dynamics = 0.5
		}
		return
	}
	for i := range moves {
		moves[i].Dynamics = (raw[i] - lo) / (hi - lo)
	}
}
