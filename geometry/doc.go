// Package geometry is the leaf geometry kernel the rest of this module
// builds on: polyline length, arc-length projection, interpolation, and
// splitting a polyline at a parametric distance.
//
// All arc-length arithmetic is plain Euclidean distance over
// gonum.org/v1/gonum/spatial/r2.Vec points; no projection, reprojection or
// spatial indexing is performed here.
package geometry
