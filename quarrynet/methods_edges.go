// File: methods_edges.go
// Role: edge lifecycle — construction-time ingestion, delete_edge, and the
// geometric split_edge operation.
package quarrynet

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/roadquarry/quarrynet/geometry"
)

// addEdgeFromInput ingests one EdgeInput at construction time: validates
// against self-loops, duplicate edges and endpoint/polyline mismatches, then
// stores the edge and derives each endpoint's position from the polyline
// the first time it is seen.
func (n *Network) addEdgeFromInput(in EdgeInput) (EdgeKey, error) {
	if in.U == in.V {
		return EdgeKey{}, wrapf("NewNetwork", ErrSelfLoop)
	}
	if !n.HasVertex(in.U) || !n.HasVertex(in.V) {
		return EdgeKey{}, wrapf("NewNetwork", ErrVertexNotFound)
	}
	if len(in.Polyline) < 2 {
		return EdgeKey{}, wrapf("NewNetwork", geometry.ErrDegeneratePolyline)
	}

	key := NewEdgeKey(in.U, in.V)
	if _, exists := n.edges[key]; exists {
		return EdgeKey{}, wrapf("NewNetwork", ErrDuplicateEdge)
	}

	if err := n.bindVertexPosition(in.U, in.Polyline[0]); err != nil {
		return EdgeKey{}, wrapf("NewNetwork", err)
	}
	if err := n.bindVertexPosition(in.V, in.Polyline[len(in.Polyline)-1]); err != nil {
		return EdgeKey{}, wrapf("NewNetwork", err)
	}

	e := &Edge{
		Key:      key,
		First:    in.U,
		Last:     in.V,
		Polyline: in.Polyline.Clone(),
		Weight:   geometry.Length(in.Polyline),
	}
	n.edges[key] = e
	n.insertionOrder = append(n.insertionOrder, key)

	return key, nil
}

// bindVertexPosition records p as vertex id's position the first time it is
// seen; on subsequent calls it checks p agrees with the recorded position
// within tolerance.
func (n *Network) bindVertexPosition(id VertexID, p geometry.Point) error {
	v := n.vertices[id]
	if v.Position == (geometry.Point{}) && !n.vertexPositioned(id) {
		v.Position = p
		n.markPositioned(id)
		return nil
	}
	if r2.Norm(r2.Sub(v.Position, p)) > n.cfg.Tolerance.Atol {
		return ErrEndpointMismatch
	}
	return nil
}

// vertexPositioned reports whether id already has a bound position, since the
// zero Point {0,0} is itself a legitimate coordinate and can't double as an
// "unset" sentinel.
func (n *Network) vertexPositioned(id VertexID) bool {
	if n.positionedSet == nil {
		return false
	}
	_, ok := n.positionedSet[id]
	return ok
}

func (n *Network) markPositioned(id VertexID) {
	if n.positionedSet == nil {
		n.positionedSet = make(map[VertexID]struct{})
	}
	n.positionedSet[id] = struct{}{}
}

// DeleteEdge removes the live edge identified by key.
func (n *Network) DeleteEdge(key EdgeKey) error {
	if _, ok := n.edges[key]; !ok {
		return wrapf("DeleteEdge", ErrEdgeNotFound)
	}
	delete(n.edges, key)
	return nil
}

// newVertex allocates a fresh ordinary vertex at position p.
func (n *Network) newVertex(p geometry.Point) *Vertex {
	id := n.nextVertexID
	n.nextVertexID++
	v := &Vertex{ID: id, Position: p}
	n.vertices[id] = v
	n.markPositioned(id)
	return v
}

// SplitEdge removes edge (u,v), interprets newLength as measured from u (or
// from v when fromEnd is true) along the polyline, creates a fresh ordinary
// vertex w at the resulting point, and inserts edges (u,w) and (w,v)
// carrying the two sub-polylines. The original edge's ancestry
// (originalEdgeOf) is inherited by both halves.
//
// Preconditions: 0 < newLength < Weight(u,v) (checked via geometry.SplitAt's
// tolerance-aware open-interval test). After a successful split, observer's
// OnSplit hook is invoked before SplitEdge returns, so that pathindex can
// repair its tables before any other caller observes the new topology.
func (n *Network) SplitEdge(key EdgeKey, newLength float64, fromEnd bool, observer SplitObserver) (u, w, v VertexID, keyUW, keyWV EdgeKey, err error) {
	e, ok := n.edges[key]
	if !ok {
		return 0, 0, 0, EdgeKey{}, EdgeKey{}, wrapf("SplitEdge", ErrEdgeNotFound)
	}

	u, v = e.First, e.Last
	splitArc := newLength
	if fromEnd {
		splitArc = e.Weight - newLength
	}

	first, second, splitErr := geometry.SplitAt(e.Polyline, splitArc, n.cfg.Tolerance)
	if splitErr != nil {
		return 0, 0, 0, EdgeKey{}, EdgeKey{}, wrapf("SplitEdge", ErrBadSplitLength)
	}

	newPoint := first[len(first)-1]
	wVertex := n.newVertex(newPoint)
	w = wVertex.ID

	origin, hasOrigin := n.originalEdgeOf[key]
	if !hasOrigin {
		origin = key
	}

	uw := &Edge{Key: NewEdgeKey(u, w), First: u, Last: w, Polyline: first, Weight: geometry.Length(first)}
	wv := &Edge{Key: NewEdgeKey(w, v), First: w, Last: v, Polyline: second, Weight: geometry.Length(second)}

	delete(n.edges, key)
	n.edges[uw.Key] = uw
	n.edges[wv.Key] = wv
	n.originalEdgeOf[uw.Key] = origin
	n.originalEdgeOf[wv.Key] = origin
	delete(n.originalEdgeOf, key)

	n.cfg.Logger.Debug().
		Int64("u", int64(u)).Int64("v", int64(v)).Int64("w", int64(w)).
		Float64("weight_uw", uw.Weight).Float64("weight_wv", wv.Weight).
		Msg("quarrynet: split edge")

	if observer != nil {
		observer.OnSplit(u, w, v, uw.Weight, wv.Weight)
	}

	return u, w, v, uw.Key, wv.Key, nil
}
