// File: api.go
// Role: constructor and read-only accessors — the public facade over
// Network's state. Mutating operations live in methods_edges.go and
// methods_capacity.go.
package quarrynet

import (
	"sort"

	"github.com/roadquarry/quarrynet/geometry"
	"github.com/roadquarry/quarrynet/quarryconf"
)

// EdgeInput describes one input edge: an unordered endpoint pair plus the
// polyline oriented from u to v.
type EdgeInput struct {
	U, V     VertexID
	Polyline geometry.Polyline
}

// NewNetwork validates and builds a Network from a vertex list, a subset of
// those marked as quarries with non-negative capacities, and a list of
// edges whose polyline endpoints must agree with the stored vertex
// positions within tolerance.
//
// Rejects malformed input with ErrSelfLoop, ErrDuplicateEdge,
// ErrEndpointMismatch, or ErrNegativeCapacity as appropriate.
func NewNetwork(vertexIDs []VertexID, quarryCapacities map[VertexID]float64, edgeInputs []EdgeInput, cfg quarryconf.Config) (*Network, error) {
	net := &Network{
		cfg:            cfg,
		vertices:       make(map[VertexID]*Vertex, len(vertexIDs)),
		edges:          make(map[EdgeKey]*Edge, len(edgeInputs)),
		quarries:       make(map[VertexID]struct{}, len(quarryCapacities)),
		capacities:     make(map[VertexID]float64, len(quarryCapacities)),
		assignment:     make(map[EdgeKey]VertexID, len(edgeInputs)),
		originalEdgeOf: make(map[EdgeKey]EdgeKey, len(edgeInputs)),
	}

	var maxID VertexID
	for _, id := range vertexIDs {
		if id == NoVertex {
			return nil, wrapf("NewNetwork", ErrEmptyVertexID)
		}
		net.vertices[id] = &Vertex{ID: id}
		if id > maxID {
			maxID = id
		}
	}
	net.nextVertexID = maxID + 1

	for q, capacity := range quarryCapacities {
		if _, ok := net.vertices[q]; !ok {
			return nil, wrapf("NewNetwork", ErrVertexNotFound)
		}
		if capacity < 0 {
			return nil, wrapf("NewNetwork", ErrNegativeCapacity)
		}
		net.quarries[q] = struct{}{}
		net.capacities[q] = capacity
	}

	for _, in := range edgeInputs {
		if _, err := net.addEdgeFromInput(in); err != nil {
			return nil, err
		}
	}

	for key := range net.edges {
		net.originalEdgeOf[key] = key
	}

	net.cfg.Logger.Debug().
		Int("vertices", len(net.vertices)).
		Int("quarries", len(net.quarries)).
		Int("edges", len(net.edges)).
		Msg("quarrynet: network constructed")

	return net, nil
}

// Config returns the tolerance/road-dimension configuration this network
// was built with.
func (n *Network) Config() quarryconf.Config { return n.cfg }

// HasVertex reports whether id is a vertex of the network.
func (n *Network) HasVertex(id VertexID) bool {
	_, ok := n.vertices[id]
	return ok
}

// IsQuarry reports whether id names a quarry vertex.
func (n *Network) IsQuarry(id VertexID) bool {
	_, ok := n.quarries[id]
	return ok
}

// Position returns the planar position of vertex id.
func (n *Network) Position(id VertexID) (geometry.Point, error) {
	v, ok := n.vertices[id]
	if !ok {
		return geometry.Point{}, wrapf("Position", ErrVertexNotFound)
	}
	return v.Position, nil
}

// VertexIDs returns every vertex id currently in the network, in ascending
// order.
func (n *Network) VertexIDs() []VertexID {
	out := make([]VertexID, 0, len(n.vertices))
	for id := range n.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Quarries returns every quarry vertex id in ascending order, so that
// iteration over quarries is deterministic.
func (n *Network) Quarries() []VertexID {
	out := make([]VertexID, 0, len(n.quarries))
	for q := range n.quarries {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Capacity returns the remaining capacity of quarry q. Returns
// ErrUnknownQuarry if q is not a quarry.
func (n *Network) Capacity(q VertexID) (float64, error) {
	if _, ok := n.quarries[q]; !ok {
		return 0, wrapf("Capacity", ErrUnknownQuarry)
	}
	return n.capacities[q], nil
}

// Edge returns the live edge identified by key, if any.
func (n *Network) Edge(key EdgeKey) (*Edge, bool) {
	e, ok := n.edges[key]
	return e, ok
}

// Edges returns every live edge, ordered by (Lo, Hi) for determinism.
func (n *Network) Edges() []*Edge {
	out := make([]*Edge, 0, len(n.edges))
	for _, e := range n.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.Lo != out[j].Key.Lo {
			return out[i].Key.Lo < out[j].Key.Lo
		}
		return out[i].Key.Hi < out[j].Key.Hi
	})
	return out
}

// OriginalEdgeOf returns the pre-split ancestor of the current edge key,
// used to aggregate per-original-edge cost and volume once splitting
// finishes.
func (n *Network) OriginalEdgeOf(key EdgeKey) (EdgeKey, bool) {
	orig, ok := n.originalEdgeOf[key]
	return orig, ok
}

// AssignedQuarry returns the quarry bound to a finalized edge, if any.
func (n *Network) AssignedQuarry(key EdgeKey) (VertexID, bool) {
	q, ok := n.assignment[key]
	return q, ok
}

// OriginalEdgeOrder returns the keys of the pre-split input edges in the
// order they were ingested. The edge-processing queue uses this order to
// break score ties, so replays are byte-identical.
func (n *Network) OriginalEdgeOrder() []EdgeKey {
	out := make([]EdgeKey, len(n.insertionOrder))
	copy(out, n.insertionOrder)
	return out
}

// Assignments returns a copy of the edge-assignment table.
func (n *Network) Assignments() map[EdgeKey]VertexID {
	out := make(map[EdgeKey]VertexID, len(n.assignment))
	for k, q := range n.assignment {
		out[k] = q
	}
	return out
}
