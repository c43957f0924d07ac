// Package quarryconf centralizes the numerical tolerance, road-construction
// constants, recursion-depth guard, and logger shared by every other package
// in this module.
//
// Every comparison in the edges splitter that "must" use tolerance — capacity
// near zero, two distances considered equal, a split length inside (0, length),
// polyline endpoint agreement — goes through the single Tolerance value built
// here, so that relaxing or tightening precision never means hunting down
// scattered epsilon literals.
package quarryconf
