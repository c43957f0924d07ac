package pathindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadquarry/quarrynet/geometry"
	"github.com/roadquarry/quarrynet/pathindex"
	"github.com/roadquarry/quarrynet/quarryconf"
	"github.com/roadquarry/quarrynet/quarrynet"
)

func straightNetwork(t *testing.T, length float64, capacity float64) *quarrynet.Network {
	t.Helper()
	cfg := quarryconf.New()
	net, err := quarrynet.NewNetwork(
		[]quarrynet.VertexID{1, 2},
		map[quarrynet.VertexID]float64{1: capacity},
		[]quarrynet.EdgeInput{
			{U: 1, V: 2, Polyline: geometry.Polyline{{X: 0, Y: 0}, {X: length, Y: 0}}},
		},
		cfg,
	)
	require.NoError(t, err)
	return net
}

func TestBuild_SingleQuarry(t *testing.T) {
	net := straightNetwork(t, 10, 1000)
	idx, err := pathindex.Build(net)
	require.NoError(t, err)

	assert.InDelta(t, 0, idx.Distance(1, 1), 1e-6)
	assert.InDelta(t, 10, idx.Distance(2, 1), 1e-6)
	assert.Equal(t, quarrynet.VertexID(1), idx.Next(2, 1))
	assert.Equal(t, quarrynet.NoVertex, idx.Next(1, 1))
}

func TestBuild_Unreachable(t *testing.T) {
	cfg := quarryconf.New()
	net, err := quarrynet.NewNetwork(
		[]quarrynet.VertexID{1, 2, 3},
		map[quarrynet.VertexID]float64{1: 100},
		[]quarrynet.EdgeInput{
			{U: 1, V: 2, Polyline: geometry.Polyline{{X: 0, Y: 0}, {X: 5, Y: 0}}},
		},
		cfg,
	)
	require.NoError(t, err)

	_, err = pathindex.Build(net)
	assert.ErrorIs(t, err, pathindex.ErrUnreachable)
}

func TestOnSplit_RedistributesAndRedirects(t *testing.T) {
	net := straightNetwork(t, 10, 1000)
	idx, err := pathindex.Build(net)
	require.NoError(t, err)

	key := quarrynet.NewEdgeKey(1, 2)
	u, w, v, _, _, err := net.SplitEdge(key, 4, false, idx)
	require.NoError(t, err)
	assert.Equal(t, quarrynet.VertexID(1), u)
	assert.Equal(t, quarrynet.VertexID(2), v)

	assert.InDelta(t, 4, idx.Distance(w, 1), 1e-6)
	assert.Equal(t, quarrynet.VertexID(1), idx.Next(w, 1))
	// u's path toward the quarry itself needs no redirect (u is the quarry);
	// the far side's pointer toward the quarry now goes through w.
	assert.Equal(t, quarrynet.NoVertex, idx.Next(u, 1))
	assert.Equal(t, w, idx.Next(v, 1))
}

func TestNearestNonEmptyQuarry_SkipsEmpty(t *testing.T) {
	cfg := quarryconf.New()
	net, err := quarrynet.NewNetwork(
		[]quarrynet.VertexID{1, 2, 3},
		map[quarrynet.VertexID]float64{1: 0, 2: 50},
		[]quarrynet.EdgeInput{
			{U: 1, V: 3, Polyline: geometry.Polyline{{X: 0, Y: 0}, {X: 2, Y: 0}}},
			{U: 2, V: 3, Polyline: geometry.Polyline{{X: 10, Y: 0}, {X: 2, Y: 0}}},
		},
		cfg,
	)
	require.NoError(t, err)

	idx, err := pathindex.Build(net)
	require.NoError(t, err)

	q, ok := pathindex.NearestNonEmptyQuarry(idx, net, 3, cfg.Tolerance)
	require.True(t, ok)
	assert.Equal(t, quarrynet.VertexID(2), q, "quarry 1 is closer but empty")
}

func TestNearestNonEmptyQuarry_TieBreaksByLowestID(t *testing.T) {
	cfg := quarryconf.New()
	net, err := quarrynet.NewNetwork(
		[]quarrynet.VertexID{1, 2, 3},
		map[quarrynet.VertexID]float64{1: 50, 2: 50},
		[]quarrynet.EdgeInput{
			{U: 1, V: 3, Polyline: geometry.Polyline{{X: 0, Y: 0}, {X: 5, Y: 0}}},
			{U: 2, V: 3, Polyline: geometry.Polyline{{X: 10, Y: 0}, {X: 5, Y: 0}}},
		},
		cfg,
	)
	require.NoError(t, err)

	idx, err := pathindex.Build(net)
	require.NoError(t, err)

	q, ok := pathindex.NearestNonEmptyQuarry(idx, net, 3, cfg.Tolerance)
	require.True(t, ok)
	assert.Equal(t, quarrynet.VertexID(1), q)
}
