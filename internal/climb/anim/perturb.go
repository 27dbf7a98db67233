package anim

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/crux.report/internal/climb/geometry"
)

// Perturbation field tuning. The offset is a few percent of each vertex's
// own baseline radius, built from two incommensurate angular waves so the
// motion reads as liquid rather than a rigid pulse.
const (
	perturbAmplitude  = 0.015
	perturbRingPhase  = 0.7
	perturbRingPhase2 = 1.3
)

// Displace returns a copy of baseline with a small time-varying radial
// offset applied to every vertex. The baseline is never mutated and the
// offset is always computed from the baseline positions, never from a
// previous frame, so repeated calls cannot accumulate drift: the same
// (baseline, t) always produces identical output.
//
// Color slices are shared with the baseline; they are immutable after a
// build, so the copy is points-deep only.
func Displace(baseline *geometry.RingSet, t float64) *geometry.RingSet {
	if baseline == nil {
		return nil
	}

	out := &geometry.RingSet{
		Rings:        make([]geometry.RingGeometry, len(baseline.Rings)),
		RingCount:    baseline.RingCount,
		MoveCount:    baseline.MoveCount,
		RingsBuilt:   baseline.RingsBuilt,
		RingsSkipped: baseline.RingsSkipped,
	}

	for i, ring := range baseline.Rings {
		points := make([]r3.Vec, len(ring.Points))
		ringSeed := float64(ring.RingIndex)
		for j, p := range ring.Points {
			rho := math.Hypot(p.X, p.Y)
			if rho == 0 {
				points[j] = p
				continue
			}
			theta := math.Atan2(p.Y, p.X)
			offset := perturbAmplitude * rho *
				(math.Sin(theta*3+t*1.5+ringSeed*perturbRingPhase) +
					0.6*math.Sin(theta*7-t*2.3+ringSeed*perturbRingPhase2))
			scale := (rho + offset) / rho
			points[j] = r3.Vec{X: p.X * scale, Y: p.Y * scale, Z: p.Z}
		}
		out.Rings[i] = geometry.RingGeometry{
			RingIndex: ring.RingIndex,
			Points:    points,
			Colors:    ring.Colors,
			Opacity:   ring.Opacity,
			Closed:    ring.Closed,
		}
	}
	return out
}
