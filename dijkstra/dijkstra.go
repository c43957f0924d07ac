// File: dijkstra.go
// Role: the shortest-path pass itself — validation, the heap loop, and
// edge relaxation.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/roadquarry/quarrynet/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g. dist maps vertex ID to its minimum distance (Unreachable when no
// path exists). With WithReturnPath, prev maps each reached vertex to its
// predecessor on a shortest path ("" for the source and unreachable
// vertices); otherwise prev is nil.
//
// Validation order: empty source, nil graph, unweighted graph, missing
// source vertex, then a full edge scan for negative weights so the error
// surfaces before any work is done.
func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error) {
	cfg := resolveOptions(opts)

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s-%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	vertices := g.Vertices()
	dist = make(map[string]int64, len(vertices))
	for _, v := range vertices {
		dist[v] = Unreachable
	}
	dist[cfg.Source] = 0

	if cfg.ReturnPath {
		prev = make(map[string]string, len(vertices))
		for _, v := range vertices {
			prev[v] = ""
		}
	}

	visited := make(map[string]bool, len(vertices))
	pq := &nodeHeap{{id: cfg.Source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*nodeItem)
		u := item.id

		// Lazy decrease-key leaves stale entries behind; skip them.
		if visited[u] {
			continue
		}
		if item.dist > cfg.MaxDistance {
			break
		}
		visited[u] = true

		neighbors, nerr := g.Neighbors(u)
		if nerr != nil {
			return nil, nil, fmt.Errorf("dijkstra: neighbors of %q: %w", u, nerr)
		}
		for _, e := range neighbors {
			if e.Directed && e.From != u {
				continue
			}
			if e.Weight >= cfg.InfEdgeThreshold {
				continue
			}

			candidate := dist[u] + e.Weight
			if candidate > cfg.MaxDistance || candidate >= dist[e.To] {
				continue
			}

			dist[e.To] = candidate
			if prev != nil {
				prev[e.To] = u
			}
			heap.Push(pq, &nodeItem{id: e.To, dist: candidate})
		}
	}

	return dist, prev, nil
}

// nodeItem pairs a vertex with its tentative distance inside the heap.
type nodeItem struct {
	id   string
	dist int64
}

type nodeHeap []*nodeItem

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*nodeItem)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
