package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/crux.report/internal/climb"
	"github.com/banshee-data/crux.report/internal/config"
)

// RingGeometry is one closed ring: resampled points, a parallel vertex
// color array of the same length, and a scalar opacity.
type RingGeometry struct {
	RingIndex int      `json:"ring_index"`
	Points    []r3.Vec `json:"points"`
	Colors    []RGB    `json:"colors"`
	Opacity   float64  `json:"opacity"`
	Closed    bool     `json:"closed"`
}

// RingSet is the full geometry handed to a renderer. Rings are ordered by
// ring index; skipped rings are absent from the slice but counted, so
// RingsBuilt + RingsSkipped always equals RingCount. MoveCount includes
// the synthetic start entry and doubles as the renderer's center scalar.
type RingSet struct {
	Rings        []RingGeometry `json:"rings"`
	RingCount    int            `json:"ring_count"`
	MoveCount    int            `json:"move_count"`
	RingsBuilt   int            `json:"rings_built"`
	RingsSkipped int            `json:"rings_skipped"`
}

// Synthesize builds the complete ring set for a move set and settings
// snapshot. The output is a pure function of its inputs: the same moves
// and settings always produce identical geometry. A nil settings pointer
// uses the built-in defaults.
//
// A move set with fewer than two entries (empty, or the synthetic start
// alone) carries nothing to deform a ring around and is rejected with
// ErrInsufficientMoves.
func Synthesize(moves climb.MoveSet, settings *config.Settings) (*RingSet, error) {
	if len(moves) < 2 {
		return nil, fmt.Errorf("%w: %d moves", climb.ErrInsufficientMoves, len(moves))
	}
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ringCount := settings.GetRingCount()
	rs := &RingSet{
		Rings:     make([]RingGeometry, 0, ringCount),
		RingCount: ringCount,
		MoveCount: len(moves),
	}
	baseOpacity := settings.GetOpacity()
	centerFade := settings.GetCenterFade()

	for ringIndex := 0; ringIndex < ringCount; ringIndex++ {
		spec := specForRing(ringIndex, ringCount, settings)
		ring, ok := buildRing(spec, moves)
		if !ok {
			rs.RingsSkipped++
			continue
		}
		ring.Opacity = ringOpacity(spec, baseOpacity, centerFade)
		rs.Rings = append(rs.Rings, ring)
		rs.RingsBuilt++
	}

	diagf("synthesize: moves=%d crux=%d rings=%d built=%d skipped=%d",
		len(moves), moves.CruxCount(), ringCount, rs.RingsBuilt, rs.RingsSkipped)
	return rs, nil
}

// ApplyMaterial recomputes each ring's opacity from the given settings
// without touching point or color buffers. This is the cheap path for
// settings changes that affect appearance but not shape.
func (rs *RingSet) ApplyMaterial(settings *config.Settings) {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	baseOpacity := settings.GetOpacity()
	centerFade := settings.GetCenterFade()
	for i := range rs.Rings {
		spec := RingSpec{RingIndex: rs.Rings[i].RingIndex, RingCount: rs.RingCount}
		rs.Rings[i].Opacity = ringOpacity(spec, baseOpacity, centerFade)
	}
}

// buildRing synthesizes one ring without its opacity. ok is false when the
// ring is degenerate: non-positive or non-finite base radius, or fewer
// than three finite sample points.
func buildRing(spec RingSpec, moves climb.MoveSet) (RingGeometry, bool) {
	base := spec.BaseRingRadius()
	if base <= 0 || !finite(base) {
		opsf("ring %d skipped: base radius %v", spec.RingIndex, base)
		return RingGeometry{}, false
	}

	detail := DetailLevel(len(moves))
	raw := make([]r3.Vec, 0, detail)
	for k := 0; k < detail; k++ {
		t := float64(k) / float64(detail)
		pt := samplePoint(spec, moves, t)
		if !finiteVec(pt) {
			tracef("ring %d: dropped non-finite point at t=%.3f", spec.RingIndex, t)
			continue
		}
		raw = append(raw, pt)
	}
	if len(raw) < 3 {
		opsf("ring %d skipped: only %d finite points of %d sampled", spec.RingIndex, len(raw), detail)
		return RingGeometry{}, false
	}

	points := newClosedSpline(raw).Resample(spec.CurveResolution)
	return RingGeometry{
		RingIndex: spec.RingIndex,
		Points:    points,
		Colors:    buildColors(moves, len(points)),
		Closed:    true,
	}, true
}

// Radius is the planar (xy) distance of point i from the ring axis.
func (rg *RingGeometry) Radius(i int) float64 {
	p := rg.Points[i]
	return math.Hypot(p.X, p.Y)
}
