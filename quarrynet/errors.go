// File: errors.go
// Role: sentinel errors for the quarrynet package.
// Policy (matches this module's error-handling convention): only sentinel
// variables are exported; callers branch with errors.Is; context is added
// with wrapf, never baked into the sentinel message itself.
package quarrynet

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyVertexID indicates a zero VertexID was used where a real
	// vertex identifier is required; zero is reserved as the "no next
	// vertex" sentinel in pathindex.
	ErrEmptyVertexID = errors.New("quarrynet: vertex id must be non-zero")

	// ErrVertexNotFound indicates an operation referenced a vertex absent
	// from the network.
	ErrVertexNotFound = errors.New("quarrynet: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge absent from
	// the network.
	ErrEdgeNotFound = errors.New("quarrynet: edge not found")

	// ErrSelfLoop indicates an edge endpoint pair with u == v; self-edges
	// are rejected outright.
	ErrSelfLoop = errors.New("quarrynet: self-loops are not allowed")

	// ErrDuplicateEdge indicates an edge between the same unordered
	// endpoint pair was already present.
	ErrDuplicateEdge = errors.New("quarrynet: duplicate edge")

	// ErrEndpointMismatch indicates a polyline's first or last coordinate
	// disagrees with its stored vertex position beyond tolerance
	//.
	ErrEndpointMismatch = errors.New("quarrynet: polyline endpoint does not match vertex position")

	// ErrNegativeCapacity indicates a quarry was given a negative initial
	// capacity; capacities must be non-negative.
	ErrNegativeCapacity = errors.New("quarrynet: quarry capacity must be non-negative")

	// ErrUnknownQuarry indicates a capacity operation referenced a vertex
	// that is not a quarry.
	ErrUnknownQuarry = errors.New("quarrynet: vertex is not a quarry")

	// ErrInsufficientCapacity indicates a debit would drive a quarry's
	// capacity negative.
	ErrInsufficientCapacity = errors.New("quarrynet: debit exceeds remaining capacity")

	// ErrBadSplitLength indicates split_edge was asked to cut outside
	// (0, length) of the target edge.
	ErrBadSplitLength = errors.New("quarrynet: split length must lie strictly inside (0, edge length)")

	// ErrAlreadyAssigned indicates an edge was assigned to a quarry twice.
	ErrAlreadyAssigned = errors.New("quarrynet: edge is already assigned")
)

// wrapf prefixes err with the calling method's name.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
