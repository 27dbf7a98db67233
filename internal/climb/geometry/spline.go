package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// minKnotInterval floors the centripetal knot spacing so coincident control
// points cannot collapse a segment into a division by zero.
const minKnotInterval = 1e-9

// closedSpline is a closed centripetal Catmull-Rom curve through a fixed
// set of control points. Centripetal parameterization (alpha 0.5) avoids
// the cusps and loops that uniform Catmull-Rom produces when control
// points are unevenly spaced, which ring deformation makes common.
type closedSpline struct {
	points []r3.Vec
}

func newClosedSpline(points []r3.Vec) *closedSpline {
	return &closedSpline{points: points}
}

// At evaluates the curve at global parameter u, taken modulo 1. Integer
// multiples of 1/len(points) land exactly on the control points.
func (cs *closedSpline) At(u float64) r3.Vec {
	n := len(cs.points)
	if n == 0 {
		return r3.Vec{}
	}
	if n == 1 {
		return cs.points[0]
	}

	u -= math.Floor(u)
	scaled := u * float64(n)
	seg := int(scaled)
	if seg >= n {
		seg = n - 1
	}
	frac := scaled - float64(seg)

	p0 := cs.points[(seg-1+n)%n]
	p1 := cs.points[seg]
	p2 := cs.points[(seg+1)%n]
	p3 := cs.points[(seg+2)%n]
	return catmullRomPoint(p0, p1, p2, p3, frac)
}

// Resample returns count points evenly spaced in curve parameter, starting
// at control point 0. The result is a closed polyline: the segment from
// the last output point back to the first closes the ring.
func (cs *closedSpline) Resample(count int) []r3.Vec {
	out := make([]r3.Vec, count)
	for i := range out {
		out[i] = cs.At(float64(i) / float64(count))
	}
	return out
}

// catmullRomPoint evaluates one centripetal Catmull-Rom segment between p1
// and p2 at local parameter frac in [0,1], using the Barry-Goldman pyramid.
func catmullRomPoint(p0, p1, p2, p3 r3.Vec, frac float64) r3.Vec {
	t0 := 0.0
	t1 := t0 + knotInterval(p0, p1)
	t2 := t1 + knotInterval(p1, p2)
	t3 := t2 + knotInterval(p2, p3)
	t := t1 + (t2-t1)*frac

	a1 := lerpVec(p0, p1, paramRatio(t0, t1, t))
	a2 := lerpVec(p1, p2, paramRatio(t1, t2, t))
	a3 := lerpVec(p2, p3, paramRatio(t2, t3, t))
	b1 := lerpVec(a1, a2, paramRatio(t0, t2, t))
	b2 := lerpVec(a2, a3, paramRatio(t1, t3, t))
	return lerpVec(b1, b2, paramRatio(t1, t2, t))
}

// knotInterval is the centripetal knot spacing between two control points:
// the square root of their Euclidean distance.
func knotInterval(p, q r3.Vec) float64 {
	interval := math.Sqrt(r3.Norm(r3.Sub(q, p)))
	if interval < minKnotInterval {
		interval = minKnotInterval
	}
	return interval
}

func paramRatio(a, b, t float64) float64 {
	return (t - a) / (b - a)
}

func lerpVec(p, q r3.Vec, t float64) r3.Vec {
	return r3.Add(r3.Scale(1-t, p), r3.Scale(t, q))
}
