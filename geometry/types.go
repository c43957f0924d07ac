package geometry

import "gonum.org/v1/gonum/spatial/r2"

// Point is a planar location. It is a direct alias of gonum's r2.Vec so r2's
// package-level arithmetic (r2.Add, r2.Sub, r2.Scale, r2.Dot) and distance
// helpers (r2.Norm, r2.Norm2) apply to every Point directly.
type Point = r2.Vec

// Polyline is an ordered sequence of at least two planar points describing
// one edge's embedded geometry. Polyline[0] is the position of the edge's
// first-point vertex, Polyline[len-1] the position of its last-point
// vertex.
type Polyline []Point

// Clone returns an independent copy of pl.
func (pl Polyline) Clone() Polyline {
	out := make(Polyline, len(pl))
	copy(out, pl)
	return out
}

// segmentLength returns the Euclidean length of the i-th segment (between
// points i and i+1).
func segmentLength(pl Polyline, i int) float64 {
	return r2.Norm(r2.Sub(pl[i+1], pl[i]))
}
