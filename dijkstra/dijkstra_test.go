package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadquarry/quarrynet/core"
	"github.com/roadquarry/quarrynet/dijkstra"
)

func weightedGraph(t *testing.T, edges ...[3]interface{}) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range edges {
		_, err := g.AddEdge(e[0].(string), e[1].(string), int64(e[2].(int)))
		require.NoError(t, err)
	}
	return g
}

func TestDijkstra_Validation(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	t.Run("empty source", func(t *testing.T) {
		_, _, err := dijkstra.Dijkstra(g)
		assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
	})

	t.Run("empty source wins over nil graph", func(t *testing.T) {
		_, _, err := dijkstra.Dijkstra(nil)
		assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
	})

	t.Run("nil graph", func(t *testing.T) {
		_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("A"))
		assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
	})

	t.Run("unweighted graph", func(t *testing.T) {
		_, _, err := dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("A"))
		assert.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)
	})

	t.Run("missing source", func(t *testing.T) {
		_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("Z"))
		assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	})
}

func TestDijkstra_Triangle(t *testing.T) {
	// A-B(1), B-C(2), A-C(5): the two-hop route beats the direct edge.
	g := weightedGraph(t,
		[3]interface{}{"A", "B", 1},
		[3]interface{}{"B", "C", 2},
		[3]interface{}{"A", "C", 5},
	)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, int64(3), dist["C"])

	assert.Equal(t, "A", prev["B"])
	assert.Equal(t, "B", prev["C"])
	assert.Equal(t, "", prev["A"])
}

func TestDijkstra_NoReturnPath(t *testing.T) {
	g := weightedGraph(t, [3]interface{}{"A", "B", 1})

	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestDijkstra_UndirectedTraversesBothWays(t *testing.T) {
	// Edges inserted A->B->C, but the source sits at the far end; an
	// undirected graph must relax backwards across insertion order.
	g := weightedGraph(t,
		[3]interface{}{"A", "B", 2},
		[3]interface{}{"B", "C", 3},
	)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("C"))
	require.NoError(t, err)

	assert.Equal(t, int64(0), dist["C"])
	assert.Equal(t, int64(3), dist["B"])
	assert.Equal(t, int64(5), dist["A"])
}

func TestDijkstra_DirectedRespectsOrientation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range [][3]interface{}{
		{"A", "B", 2}, {"A", "C", 1}, {"C", "B", 1}, {"B", "D", 3}, {"C", "D", 5},
	} {
		_, err := g.AddEdge(e[0].(string), e[1].(string), int64(e[2].(int)))
		require.NoError(t, err)
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), dist["C"])
	assert.Equal(t, int64(2), dist["B"], "A->C->B ties A->B; both cost 2")
	assert.Equal(t, int64(5), dist["D"])

	// Nothing flows against the arrows.
	backward, _, err := dijkstra.Dijkstra(g, dijkstra.Source("D"))
	require.NoError(t, err)
	assert.Equal(t, int64(dijkstra.Unreachable), backward["A"])
}

func TestDijkstra_MixedEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMixedEdges())
	_, err := g.AddEdge("A", "B", 2, core.WithEdgeDirected(true))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 3, core.WithEdgeDirected(false))
	require.NoError(t, err)
	_, err = g.AddEdge("C", "D", 1, core.WithEdgeDirected(true))
	require.NoError(t, err)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	assert.Equal(t, int64(2), dist["B"])
	assert.Equal(t, int64(5), dist["C"])
	assert.Equal(t, int64(6), dist["D"])
	assert.Equal(t, "C", prev["D"])
}

func TestDijkstra_UnreachableVertex(t *testing.T) {
	g := weightedGraph(t, [3]interface{}{"A", "B", 1})
	require.NoError(t, g.AddVertex("island"))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(dijkstra.Unreachable), dist["island"])
}

func TestDijkstra_NegativeWeightRejected(t *testing.T) {
	g := weightedGraph(t, [3]interface{}{"A", "B", -5})

	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := weightedGraph(t,
		[3]interface{}{"A", "B", 1},
		[3]interface{}{"B", "C", 1},
		[3]interface{}{"C", "D", 1},
	)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)

	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, int64(dijkstra.Unreachable), dist["C"])
	assert.Equal(t, int64(dijkstra.Unreachable), dist["D"])
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// The cheap detour survives; the heavy direct edge is a wall.
	g := weightedGraph(t,
		[3]interface{}{"A", "B", 100},
		[3]interface{}{"A", "C", 1},
		[3]interface{}{"C", "B", 1},
	)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(50))
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist["B"])
}

func TestDijkstra_SelfLoopIsNeutral(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, err := g.AddEdge("A", "A", 7)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 2)
	require.NoError(t, err)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, int64(2), dist["B"])
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}
