package geometry

import (
	"github.com/banshee-data/crux.report/internal/config"
)

// Detail-level bounds for the raw circle sampling. Four control points per
// move gives the spline enough freedom to follow each move's deformation;
// the clamp keeps tiny and huge move sets inside a sane range before the
// curve builder upsamples to the configured resolution.
const (
	MinDetailLevel = 8
	MaxDetailLevel = 32
)

// RingSpec is the per-ring settings snapshot handed to the synthesizer.
// One RingSpec plus one move set fully determines one ring's geometry.
type RingSpec struct {
	RingIndex int
	RingCount int

	BaseRadius         float64
	RingSpacing        float64
	CombinedSize       float64
	DynamicsMultiplier float64
	OrganicNoise       float64
	CruxEmphasis       float64
	DepthEffect        float64
	LiquidSize         float64
	CurveResolution    int
}

// specForRing snapshots the geometry-relevant settings for one ring index.
func specForRing(ringIndex, ringCount int, s *config.Settings) RingSpec {
	return RingSpec{
		RingIndex:          ringIndex,
		RingCount:          ringCount,
		BaseRadius:         s.GetBaseRadius(),
		RingSpacing:        s.GetRingSpacing(),
		CombinedSize:       s.GetCombinedSize(),
		DynamicsMultiplier: s.GetDynamicsMultiplier(),
		OrganicNoise:       s.GetOrganicNoise(),
		CruxEmphasis:       s.GetCruxEmphasis(),
		DepthEffect:        s.GetDepthEffect(),
		LiquidSize:         s.GetLiquidSize(),
		CurveResolution:    s.GetCurveResolution(),
	}
}

// RingProgress is the 0..1 position of this ring in the stack. The
// innermost ring sits at 0, which zeroes every deformation envelope and
// keeps it a stable anchor circle.
func (rs RingSpec) RingProgress() float64 {
	if rs.RingCount <= 0 {
		return 0
	}
	return float64(rs.RingIndex) / float64(rs.RingCount)
}

// BaseRingRadius is the undeformed radius of this ring. The small spacing
// bias keeps rings separated even when ring_spacing is configured to zero.
func (rs RingSpec) BaseRingRadius() float64 {
	return (rs.BaseRadius + float64(rs.RingIndex)*(rs.RingSpacing+0.001)) * rs.CombinedSize
}

// DetailLevel returns the number of raw control points sampled around the
// circle for a given move count, before spline upsampling.
func DetailLevel(moveCount int) int {
	detail := moveCount * 4
	if detail < MinDetailLevel {
		detail = MinDetailLevel
	}
	if detail > MaxDetailLevel {
		detail = MaxDetailLevel
	}
	return detail
}
