package quarrynet

import (
	"github.com/roadquarry/quarrynet/geometry"
	"github.com/roadquarry/quarrynet/quarryconf"
)

// VertexID is an opaque, monotonically-assigned vertex identifier.
// Zero is reserved as the NoVertex sentinel.
type VertexID int64

// NoVertex is the zero value used by pathindex to mean "no next vertex"
// (a quarry vertex relative to itself).
const NoVertex VertexID = 0

// Vertex is a planar point, either a quarry or an ordinary vertex created
// either at network construction or by a split.
type Vertex struct {
	ID       VertexID
	Position geometry.Point
}

// EdgeKey is the unordered identity of an edge. Ordered pairs are never
// exposed to callers, so EdgeKey always stores its endpoints with Lo <= Hi.
type EdgeKey struct {
	Lo, Hi VertexID
}

// NewEdgeKey builds the canonical unordered key for the pair (u, v).
func NewEdgeKey(u, v VertexID) EdgeKey {
	if u <= v {
		return EdgeKey{Lo: u, Hi: v}
	}
	return EdgeKey{Lo: v, Hi: u}
}

// Edge is an undirected road segment. First and Last record which endpoint
// the stored Polyline starts and ends at — distinct from Key, which is
// unordered.
type Edge struct {
	Key      EdgeKey
	First    VertexID
	Last     VertexID
	Polyline geometry.Polyline
	Weight   float64 // geometry.Length(Polyline); cached, kept in sync on every mutation.

	// AssignedQuarry is nil until the edge is finalized by construct_edge.
	AssignedQuarry *VertexID
}

// Other returns the endpoint of e that is not v.
func (e *Edge) Other(v VertexID) VertexID {
	if e.First == v {
		return e.Last
	}
	return e.First
}

// SplitObserver is notified whenever Network splits an edge, so that the
// shortest-path oracle (pathindex.Index) can repair its distance/next
// tables incrementally instead of being rebuilt from scratch.
type SplitObserver interface {
	OnSplit(u, w, v VertexID, weightUW, weightWV float64)
}

// Network is the road network store: vertices, edges with polyline
// geometry, quarry capacities, and the edge-assignment table. It is the
// single mutable source of truth the splitter drives to completion.
type Network struct {
	cfg quarryconf.Config

	vertices map[VertexID]*Vertex
	edges    map[EdgeKey]*Edge

	quarries   map[VertexID]struct{}
	capacities map[VertexID]float64

	assignment map[EdgeKey]VertexID

	// originalEdgeOf tracks each live edge back to the pre-split edge that
	// spawned it, for the excluded
	// network-builder collaborator's cost aggregation.
	originalEdgeOf map[EdgeKey]EdgeKey

	nextVertexID VertexID

	// positionedSet tracks which vertices already have a bound position;
	// see bindVertexPosition in methods_edges.go.
	positionedSet map[VertexID]struct{}

	// insertionOrder records the order EdgeInput values were ingested in,
	// for the edge-processing queue's insertion-order tie-break.
	insertionOrder []EdgeKey
}
