package geometry

import "errors"

// ErrGeometryOutOfRange indicates a projection or split was requested at an
// arc-length outside the polyline's [0, length] range, or (for SplitAt and
// Split) within tolerance of an endpoint — see SplitAt's doc comment for the
// minimum-separation rule this enforces.
var ErrGeometryOutOfRange = errors.New("geometry: position out of range")

// ErrDegeneratePolyline indicates a polyline with fewer than two points was
// passed to an operation that requires at least one segment.
var ErrDegeneratePolyline = errors.New("geometry: polyline must have at least two points")
