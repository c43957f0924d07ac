// File: errors.go
// Role: sentinel errors for the fixture generators. Callers branch with
// errors.Is; context is attached with %w at the call site.
package quarrygen

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's
// minimum (a line needs 2 vertices, a grid 1x1, a star 1 leaf).
var ErrTooFewVertices = errors.New("quarrygen: parameter too small")

// ErrBadSpacing indicates a non-positive vertex spacing.
var ErrBadSpacing = errors.New("quarrygen: spacing must be positive")

// ErrQuarryIndex indicates a quarry placed at a vertex index outside the
// generated topology.
var ErrQuarryIndex = errors.New("quarrygen: quarry index out of range")

// ErrNeedRandSource indicates a stochastic constructor was called without
// a seed or RNG.
var ErrNeedRandSource = errors.New("quarrygen: rng is required")
