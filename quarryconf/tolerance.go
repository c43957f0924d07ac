package quarryconf

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance bundles the absolute and relative tolerances used for every
// numerical comparison in the splitter pipeline.
//
// Two values are equal when either the absolute or the relative test holds:
//
//	|a-b| <= Atol  or  |a-b| <= Rtol*max(|a|,|b|)
//
// which gonum's scalar.EqualWithinAbsOrRel implements directly; this type is
// a thin, named wrapper so call sites read as domain comparisons
// ("dist.Equal(a, b)") instead of bare epsilon arithmetic.
type Tolerance struct {
	// Atol is the absolute tolerance floor, dominant for values near zero.
	Atol float64
	// Rtol is the relative tolerance, dominant for large magnitudes.
	Rtol float64
}

// DefaultTolerance returns the tolerance used across the test suite and the
// CLI unless the caller overrides it: Atol=1e-9, Rtol=1e-9.
func DefaultTolerance() Tolerance {
	return Tolerance{Atol: 1e-9, Rtol: 1e-9}
}

// Equal reports whether a and b agree within the tolerance.
func (t Tolerance) Equal(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, t.Atol, t.Rtol)
}

// IsZero reports whether v compares equal to 0 within the tolerance.
// Used for "capacity is empty" and "polyline endpoint offset is negligible".
func (t Tolerance) IsZero(v float64) bool {
	return t.Equal(v, 0)
}

// LessOrEqual reports whether a <= b, treating a and b within tolerance of
// each other as equal (so a <= b holds even when a is a hair above b due to
// floating-point drift). The capacity-split decision "V <= capacity(q)" must
// use this, not a strict "<".
func (t Tolerance) LessOrEqual(a, b float64) bool {
	return a <= b || t.Equal(a, b)
}

// StrictlyLess reports whether a < b once tolerance-equal values are
// excluded — the complement of LessOrEqual's equality carve-out.
func (t Tolerance) StrictlyLess(a, b float64) bool {
	return a < b && !t.Equal(a, b)
}

// InOpenInterval reports whether v lies strictly inside (lo, hi), honoring
// tolerance at both endpoints. Used to validate split lengths against the
// "0 < new_length < length" precondition: a split requested within
// tolerance of either endpoint is rejected rather than producing a
// zero-length (or pathologically short) sub-polyline.
func (t Tolerance) InOpenInterval(v, lo, hi float64) bool {
	if t.Equal(v, lo) || t.Equal(v, hi) {
		return false
	}
	return v > lo && v < hi
}
