// File: methods_edges.go
// Role: edge lifecycle and adjacency queries. Edge IDs are "e" plus a
// monotone decimal counter; Edges() and Neighbors() sort by edge ID so
// traversal order is reproducible.
package core

import (
	"sort"
	"strconv"
)

// AddEdge creates a new edge from→to with the given weight, auto-creating
// missing endpoint vertices, and returns the generated edge ID.
//
// Constraints, checked in order:
//   - empty endpoint ID: ErrEmptyVertexID;
//   - non-zero weight on an unweighted graph: ErrBadWeight;
//   - self-loop without WithLoops: ErrLoopNotAllowed;
//   - per-edge options without WithMixedEdges: ErrMixedEdgesNotAllowed;
//   - parallel edge without WithMultiEdges: ErrMultiEdgeNotAllowed.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti {
		if inner := g.adjacency[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)

	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}

	g.edges[eid] = e
	g.ensureAdjacency(from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if !e.Directed && from != to {
		g.ensureAdjacency(to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether at least one edge links from→to (in either
// stored direction for undirected edges).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adjacency[from][to]) > 0
}

// Edges returns every edge sorted by edge ID.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdgesByID(out)
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Neighbors returns every edge incident to vertex id, sorted by edge ID.
// For a directed edge the entry appears only in its From vertex's list; an
// undirected edge appears in both endpoints' lists. Returns
// ErrVertexNotFound for an unknown vertex.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{})
	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			if _, dup := seen[eid]; dup {
				continue
			}
			seen[eid] = struct{}{}
			// An undirected mirror entry stores the edge under the opposite
			// orientation; normalize so the caller always reads e.To as the
			// neighbor when relaxing out of id.
			out = append(out, orientEdgeFrom(g.edges[eid], id))
		}
	}
	sortEdgesByID(out)
	return out, nil
}

// orientEdgeFrom returns e with From == local when the edge is undirected
// and stored in the opposite orientation, so relaxation loops can always
// read e.To as "the neighbor". Directed edges are returned untouched.
func orientEdgeFrom(e *Edge, local string) *Edge {
	if e.Directed || e.From == local {
		return e
	}
	flipped := *e
	flipped.From, flipped.To = e.To, e.From
	return &flipped
}

func sortEdgesByID(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i].ID, edges[j].ID
		if len(a) != len(b) {
			return len(a) < len(b) // "e2" < "e10"
		}
		return a < b
	})
}

func (g *Graph) ensureAdjacency(from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}
