// Package quarrygen builds small synthetic road networks for tests,
// benchmarks and the example program: lines, orthogonal grids, stars, and
// sparse random graphs, all with straight-line edge geometry.
//
// It is a fixture generator, not a grid generator: it does not triangulate
// a point cloud, it emits hand-shaped topologies whose distances are easy
// to reason about in assertions. Every constructor is deterministic for a
// fixed option set; stochastic shapes require an explicit seed or RNG.
package quarrygen
