package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadquarry/quarrynet/core"
)

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))

	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))
}

func TestAddEdge_AutoCreatesVertices(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	eid, err := g.AddEdge("A", "B", 7)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"), "undirected edge must be visible from both sides")
}

func TestAddEdge_Constraints(t *testing.T) {
	t.Run("weight on unweighted graph", func(t *testing.T) {
		g := core.NewGraph()
		_, err := g.AddEdge("A", "B", 3)
		assert.ErrorIs(t, err, core.ErrBadWeight)
	})

	t.Run("self-loop without WithLoops", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted())
		_, err := g.AddEdge("A", "A", 1)
		assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	})

	t.Run("parallel edge without WithMultiEdges", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted())
		_, err := g.AddEdge("A", "B", 1)
		require.NoError(t, err)
		_, err = g.AddEdge("A", "B", 2)
		assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	})

	t.Run("per-edge override without WithMixedEdges", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted())
		_, err := g.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
		assert.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)
	})
}

func TestVertices_SortedAscending(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestNeighbors_UndirectedOrientation(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)

	// From A's point of view the neighbor is B.
	fromA, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, fromA, 1)
	assert.Equal(t, "B", fromA[0].To)

	// From B's point of view the same undirected edge must be reoriented so
	// that relaxing out of B reaches A, not B itself.
	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, fromB, 1)
	assert.Equal(t, "B", fromB[0].From)
	assert.Equal(t, "A", fromB[0].To)
	assert.Equal(t, int64(5), fromB[0].Weight)
}

func TestNeighbors_DirectedOnlyFromSource(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)

	fromA, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, fromA, 1)

	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, fromB, "a directed edge must not be traversable backwards")
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdges_StableOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("A", "B", int64(i))
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, 12)
	// "e2" must sort before "e10": numeric suffix order, not lexicographic.
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e10", edges[9].ID)
	assert.Equal(t, "e12", edges[11].ID)
}
