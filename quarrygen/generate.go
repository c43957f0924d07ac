// File: generate.go
// Role: the fixture constructors — Line, Grid, Star and RandomSparse.
//
// Determinism: vertices are numbered 1..n in a documented order (line
// order, row-major, center-then-leaves, insertion order), edges are
// emitted in a stable order, and stochastic draws go through the injected
// RNG only.
package quarrygen

import (
	"fmt"
	"math"

	"github.com/roadquarry/quarrynet/geometry"
	"github.com/roadquarry/quarrynet/quarrynet"
)

// Line builds n vertices on a horizontal line joined by straight edges.
// Vertex i (0-based index, id i+1) sits at (i*spacing, 0).
func Line(n int, opts ...Option) (*quarrynet.Network, error) {
	if n < 2 {
		return nil, fmt.Errorf("Line: n=%d (must be >= 2): %w", n, ErrTooFewVertices)
	}
	c := resolveOptions(opts)

	points := make([]geometry.Point, n)
	for i := 0; i < n; i++ {
		points[i] = geometry.Point{X: float64(i) * c.spacing}
	}

	edges := make([]quarrynet.EdgeInput, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, quarrynet.EdgeInput{
			U:        quarrynet.VertexID(i + 1),
			V:        quarrynet.VertexID(i + 2),
			Polyline: geometry.Polyline{points[i], points[i+1]},
		})
	}

	return assemble(c, n, edges)
}

// Grid builds a rows x cols orthogonal grid with 4-neighborhood edges.
// Vertices are numbered row-major: index r*cols+c (id index+1) sits at
// (c*spacing, r*spacing). For each cell the right edge is emitted before
// the bottom edge.
func Grid(rows, cols int, opts ...Option) (*quarrynet.Network, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be >= 1): %w", rows, cols, ErrTooFewVertices)
	}
	c := resolveOptions(opts)

	n := rows * cols
	at := func(r, col int) geometry.Point {
		return geometry.Point{X: float64(col) * c.spacing, Y: float64(r) * c.spacing}
	}
	id := func(r, col int) quarrynet.VertexID {
		return quarrynet.VertexID(r*cols + col + 1)
	}

	var edges []quarrynet.EdgeInput
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			if col+1 < cols {
				edges = append(edges, quarrynet.EdgeInput{
					U:        id(r, col),
					V:        id(r, col+1),
					Polyline: geometry.Polyline{at(r, col), at(r, col+1)},
				})
			}
			if r+1 < rows {
				edges = append(edges, quarrynet.EdgeInput{
					U:        id(r, col),
					V:        id(r+1, col),
					Polyline: geometry.Polyline{at(r, col), at(r+1, col)},
				})
			}
		}
	}

	return assemble(c, n, edges)
}

// Star builds one center vertex (index 0, id 1) with the given number of
// leaves spread evenly on a circle of radius spacing around it.
func Star(leaves int, opts ...Option) (*quarrynet.Network, error) {
	if leaves < 1 {
		return nil, fmt.Errorf("Star: leaves=%d (must be >= 1): %w", leaves, ErrTooFewVertices)
	}
	c := resolveOptions(opts)

	center := geometry.Point{}
	edges := make([]quarrynet.EdgeInput, 0, leaves)
	for i := 0; i < leaves; i++ {
		angle := 2 * math.Pi * float64(i) / float64(leaves)
		leaf := geometry.Point{X: c.spacing * math.Cos(angle), Y: c.spacing * math.Sin(angle)}
		edges = append(edges, quarrynet.EdgeInput{
			U:        1,
			V:        quarrynet.VertexID(i + 2),
			Polyline: geometry.Polyline{center, leaf},
		})
	}

	return assemble(c, leaves+1, edges)
}

// RandomSparse builds n vertices at RNG-drawn positions joined by a random
// spanning tree plus extra shortcut edges, so the result is always
// connected. Requires WithSeed or WithRand.
func RandomSparse(n, extraEdges int, opts ...Option) (*quarrynet.Network, error) {
	if n < 2 {
		return nil, fmt.Errorf("RandomSparse: n=%d (must be >= 2): %w", n, ErrTooFewVertices)
	}
	c := resolveOptions(opts)
	if c.rng == nil {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
	}

	span := c.spacing * float64(n)
	points := make([]geometry.Point, n)
	for i := range points {
		points[i] = geometry.Point{X: c.rng.Float64() * span, Y: c.rng.Float64() * span}
	}

	type pair struct{ u, v int }
	present := make(map[pair]bool)
	link := func(u, v int) quarrynet.EdgeInput {
		if u > v {
			u, v = v, u
		}
		present[pair{u, v}] = true
		return quarrynet.EdgeInput{
			U:        quarrynet.VertexID(u + 1),
			V:        quarrynet.VertexID(v + 1),
			Polyline: geometry.Polyline{points[u], points[v]},
		}
	}

	// Random spanning tree: attach each new vertex to a random earlier one.
	edges := make([]quarrynet.EdgeInput, 0, n-1+extraEdges)
	for i := 1; i < n; i++ {
		edges = append(edges, link(c.rng.Intn(i), i))
	}

	// Extra shortcuts, skipping loops and duplicates; bounded attempts keep
	// the constructor total even for saturated graphs.
	attempts := 0
	for added := 0; added < extraEdges && attempts < 10*extraEdges+100; attempts++ {
		u, v := c.rng.Intn(n), c.rng.Intn(n)
		if u == v {
			continue
		}
		lo, hi := u, v
		if lo > hi {
			lo, hi = hi, lo
		}
		if present[pair{lo, hi}] {
			continue
		}
		edges = append(edges, link(u, v))
		added++
	}

	return assemble(c, n, edges)
}

// assemble validates quarry placement and hands the topology to
// quarrynet.NewNetwork.
func assemble(c genConfig, n int, edges []quarrynet.EdgeInput) (*quarrynet.Network, error) {
	vertices := make([]quarrynet.VertexID, n)
	for i := range vertices {
		vertices[i] = quarrynet.VertexID(i + 1)
	}

	capacities := make(map[quarrynet.VertexID]float64, len(c.quarries))
	for _, q := range c.quarries {
		if q.index < 0 || q.index >= n {
			return nil, fmt.Errorf("quarry index %d with %d vertices: %w", q.index, n, ErrQuarryIndex)
		}
		capacities[quarrynet.VertexID(q.index+1)] = q.capacity
	}

	net, err := quarrynet.NewNetwork(vertices, capacities, edges, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	return net, nil
}
