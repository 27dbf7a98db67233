package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/crux.report/internal/climb"
)

// Crux-boost falloff steepness in wrapped position units. At 15, a crux
// move's radial boost decays to ~22% within 0.1 of a full turn.
const cruxFalloffRate = 15.0

// dynamicsAt interpolates move dynamics at normalized circle position t.
// The position maps onto the move sequence as t*moveCount and the two
// bracketing moves are lerped; the bracket wraps at the seam so the closed
// ring has no dynamics step between the last move and the first.
func dynamicsAt(moves climb.MoveSet, t float64) float64 {
	n := len(moves)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return moves[0].Dynamics
	}
	pos := t * float64(n)
	lower := int(math.Floor(pos))
	if lower >= n {
		lower = n - 1
	}
	upper := (lower + 1) % n
	frac := pos - float64(lower)
	return moves[lower].Dynamics + (moves[upper].Dynamics-moves[lower].Dynamics)*frac
}

// enhanceDynamics applies the three-segment response curve: low dynamics
// nearly flat, mid-range linear, high dynamics explosive. Continuous at
// both segment joins.
func enhanceDynamics(d float64) float64 {
	switch {
	case d < 0.3:
		return d * 0.1
	case d < 0.6:
		return 0.03 + (d-0.3)*1.5
	default:
		return 0.48 + math.Pow(d-0.6, 2.5)*8.0
	}
}

// wrapDistance is the shortest distance between two normalized circle
// positions in [0,1), accounting for the wrap at 1.
func wrapDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}

// cruxBoost returns the strongest crux-proximity contribution at position
// t: exponential falloff from each crux move's own circle position, scaled
// by that move's dynamics and the emphasis setting.
func cruxBoost(moves climb.MoveSet, t, cruxEmphasis float64) float64 {
	n := len(moves)
	boost := 0.0
	for i, mv := range moves {
		if !mv.IsCrux {
			continue
		}
		movePos := float64(i) / float64(n)
		falloff := math.Exp(-wrapDistance(t, movePos) * cruxFalloffRate)
		if b := mv.Dynamics * cruxEmphasis * 0.3 * falloff; b > boost {
			boost = b
		}
	}
	return boost
}

// organicNoiseAt sums four fixed sine harmonics at position t. The raw sum
// is dimensionless; callers scale it by the dynamics envelope and the
// organic_noise setting.
func organicNoiseAt(t float64) float64 {
	return math.Sin(t*math.Pi*200)*0.005 +
		math.Sin(t*math.Pi*400)*0.003 +
		math.Sin(t*math.Pi*800)*0.002 +
		math.Sin(t*math.Pi*1600)*0.001
}

// samplePoint computes one raw ring vertex at normalized position t in [0,1).
// Every deformation term carries a ring-progress envelope, so ring 0 comes
// out as an exact circle of BaseRingRadius regardless of the move set.
func samplePoint(spec RingSpec, moves climb.MoveSet, t float64) r3.Vec {
	angle := t*2*math.Pi + math.Pi/2 // sample 0 at 12 o'clock
	rp := spec.RingProgress()
	radialGrowth := math.Pow(rp, 0.6)

	dynamics := dynamicsAt(moves, t)
	enhanced := enhanceDynamics(dynamics) * (1 + rp*1.2)
	dynamicsEffect := enhanced * spec.DynamicsMultiplier

	radius := spec.BaseRingRadius() + dynamicsEffect*radialGrowth

	if spec.OrganicNoise > 0 {
		radius += organicNoiseAt(t) * dynamicsEffect * radialGrowth * spec.OrganicNoise * 10
	}

	radius += cruxBoost(moves, t, spec.CruxEmphasis) * rp

	phase := float64(spec.RingIndex) * 0.5
	wave := math.Sin(angle*20*spec.LiquidSize+phase)*0.05 +
		math.Cos(angle*15*spec.LiquidSize+phase*1.3)*0.03
	radius += wave * dynamicsEffect * radialGrowth

	z := (math.Sin(angle)+math.Sin(2*angle)*0.3+math.Sin(3*angle)*0.15)*spec.DepthEffect*rp +
		(dynamics-0.5)*spec.DepthEffect*0.4*rp

	return r3.Vec{
		X: math.Cos(angle) * radius,
		Y: math.Sin(angle) * radius,
		Z: z,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteVec(v r3.Vec) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}
