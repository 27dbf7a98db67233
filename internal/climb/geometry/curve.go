package geometry

import (
	"math"

	"github.com/banshee-data/crux.report/internal/climb"
)

const (
	// cruxColorCutoff is the wrapped-position distance beyond which a
	// vertex takes no crux tint. Linear falloff inside the cutoff, unlike
	// the radial boost's exponential falloff.
	cruxColorCutoff = 0.12

	// minRingOpacity keeps every built ring faintly visible no matter how
	// aggressive the center fade is.
	minRingOpacity = 0.1
)

// RGB is a vertex color with components in [0,1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Ring palette: a cool base tint pulled toward a hot accent near crux moves.
var (
	normalColor = RGB{R: 0.25, G: 0.55, B: 0.85}
	cruxColor   = RGB{R: 0.95, G: 0.30, B: 0.10}
)

// cruxInfluence returns how strongly the vertex at normalized position u is
// pulled toward the crux color: the strongest linear falloff over all crux
// moves, weighted by each move's dynamics, clamped to [0,1].
func cruxInfluence(moves climb.MoveSet, u float64) float64 {
	n := len(moves)
	influence := 0.0
	for i, mv := range moves {
		if !mv.IsCrux {
			continue
		}
		movePos := float64(i) / float64(n)
		d := wrapDistance(u, movePos)
		if d >= cruxColorCutoff {
			continue
		}
		if v := mv.Dynamics * (1 - d/cruxColorCutoff); v > influence {
			influence = v
		}
	}
	return math.Min(influence, 1)
}

// buildColors assigns one color per resampled vertex by blending the
// normal palette toward the crux palette by crux influence.
func buildColors(moves climb.MoveSet, count int) []RGB {
	colors := make([]RGB, count)
	for i := range colors {
		u := float64(i) / float64(count)
		colors[i] = lerpRGB(normalColor, cruxColor, cruxInfluence(moves, u))
	}
	return colors
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// ringOpacity computes the scalar opacity for one ring: outer rings fade
// slightly with progress, inner rings fade toward the center by the
// center_fade setting, floored so no ring disappears entirely.
func ringOpacity(spec RingSpec, baseOpacity, centerFade float64) float64 {
	rp := spec.RingProgress()
	op := baseOpacity * (1 - rp*0.3) * (1 - centerFade*math.Pow(1-rp, 2.5))
	if op < minRingOpacity {
		op = minRingOpacity
	}
	return op
}
