// File: geometry.go
// Role: polyline length, arc-length projection, interpolation and splitting —
// component A of the edges splitter.
package geometry

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/roadquarry/quarrynet/quarryconf"
)

// Length returns the sum of segment lengths of pl. A degenerate polyline
// (fewer than two points) has length 0.
func Length(pl Polyline) float64 {
	if len(pl) < 2 {
		return 0
	}
	var total float64
	for i := 0; i < len(pl)-1; i++ {
		total += segmentLength(pl, i)
	}
	return total
}

// Project returns the arc-length s at which the projection of p onto pl
// lies, clamped to [0, Length(pl)]. For each segment it projects p onto the
// segment's supporting line, clamps the projection parameter to [0,1], and
// keeps the candidate closest to p — the same nearest-point-on-polyline
// approach used across the retrieved graphics/geometry examples.
func Project(pl Polyline, p Point) float64 {
	if len(pl) < 2 {
		return 0
	}

	var (
		bestDist2 = -1.0
		bestArc   float64
		arc       float64
	)
	for i := 0; i < len(pl)-1; i++ {
		a, b := pl[i], pl[i+1]
		segVec := r2.Sub(b, a)
		segLen := r2.Norm(segVec)

		var t float64
		if segLen > 0 {
			t = r2.Dot(r2.Sub(p, a), segVec) / (segLen * segLen)
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}
		closest := r2.Add(a, r2.Scale(t, segVec))
		dist2 := r2.Norm2(r2.Sub(p, closest))
		if bestDist2 < 0 || dist2 < bestDist2 {
			bestDist2 = dist2
			bestArc = arc + t*segLen
		}
		arc += segLen
	}

	return bestArc
}

// Interpolate returns the point on pl at arc-length s from the start.
// Returns ErrGeometryOutOfRange if s < 0 or s > Length(pl) (beyond a
// negligible floating-point slack).
func Interpolate(pl Polyline, s float64) (Point, error) {
	if len(pl) < 2 {
		return Point{}, ErrDegeneratePolyline
	}
	length := Length(pl)
	if s < -1e-9 || s > length+1e-9 {
		return Point{}, ErrGeometryOutOfRange
	}
	if s < 0 {
		s = 0
	}
	if s > length {
		s = length
	}

	var walked float64
	for i := 0; i < len(pl)-1; i++ {
		segLen := segmentLength(pl, i)
		if walked+segLen >= s || i == len(pl)-2 {
			if segLen == 0 {
				return pl[i], nil
			}
			t := (s - walked) / segLen
			return r2.Add(pl[i], r2.Scale(t, r2.Sub(pl[i+1], pl[i]))), nil
		}
		walked += segLen
	}

	return pl[len(pl)-1], nil
}

// SplitAt cuts pl at arc-length s, returning the (A, B) sub-polylines whose
// concatenation reproduces pl. If s lands
// strictly between two existing vertices of pl, the new point is inserted
// into both outputs; if it coincides with an existing vertex within tol, that
// vertex is shared rather than duplicated.
//
// SplitAt fails with ErrGeometryOutOfRange when s is not strictly inside
// (0, Length(pl)) within tol — a minimum-separation guard against producing
// a zero-length sub-edge. Callers should treat that failure as "already as
// split as it can be" rather than as a fatal error.
func SplitAt(pl Polyline, s float64, tol quarryconf.Tolerance) (Polyline, Polyline, error) {
	if len(pl) < 2 {
		return nil, nil, ErrDegeneratePolyline
	}
	length := Length(pl)
	if !tol.InOpenInterval(s, 0, length) {
		return nil, nil, ErrGeometryOutOfRange
	}

	var walked float64
	for i := 0; i < len(pl)-1; i++ {
		segLen := segmentLength(pl, i)
		next := walked + segLen

		switch {
		case tol.Equal(walked, s):
			// s coincides with vertex i: share it, no duplicate point.
			a := append(Polyline{}, pl[:i+1]...)
			b := append(Polyline{}, pl[i:]...)
			return a, b, nil
		case tol.Equal(next, s):
			// s coincides with vertex i+1: share it.
			a := append(Polyline{}, pl[:i+2]...)
			b := append(Polyline{}, pl[i+1:]...)
			return a, b, nil
		case s < next:
			cut, err := Interpolate(pl, s)
			if err != nil {
				return nil, nil, err
			}
			a := make(Polyline, 0, i+2)
			a = append(a, pl[:i+1]...)
			a = append(a, cut)

			b := make(Polyline, 0, len(pl)-i)
			b = append(b, cut)
			b = append(b, pl[i+1:]...)

			return a, b, nil
		}
		walked = next
	}

	// Unreachable given the InOpenInterval guard above, but keeps the
	// compiler happy about a fallthrough return.
	return nil, nil, ErrGeometryOutOfRange
}

// Split cuts pl at the projection of p (Project(pl, p)). It is a convenience
// wrapper over SplitAt for callers that have a point rather than an
// arc-length in hand; the edges splitter itself always works in arc-lengths
// and calls SplitAt directly.
func Split(pl Polyline, p Point, tol quarryconf.Tolerance) (Polyline, Polyline, error) {
	return SplitAt(pl, Project(pl, p), tol)
}
