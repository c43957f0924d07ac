// File: queue.go
// Role: the edge-processing queue — orders the original (pre-split) edges
// by ascending distance to their nearest quarry.
package splitter

import (
	"sort"

	"github.com/roadquarry/quarrynet/pathindex"
	"github.com/roadquarry/quarrynet/quarrynet"
)

// orderedEdges returns the pre-split edge keys sorted by ascending score,
// where an edge's score is the smaller of its endpoints' distances to
// their nearest quarry. Ties keep insertion order. The queue is computed
// once, before any splitting; sub-edges created later are handled by the
// recursive call, never requeued.
func orderedEdges(net *quarrynet.Network, idx *pathindex.Index) []quarrynet.EdgeKey {
	quarries := idx.Quarries()

	nearest := func(v quarrynet.VertexID) float64 {
		best := idx.Distance(v, quarries[0])
		for _, q := range quarries[1:] {
			if d := idx.Distance(v, q); d < best {
				best = d
			}
		}
		return best
	}

	keys := net.OriginalEdgeOrder()
	scores := make(map[quarrynet.EdgeKey]float64, len(keys))
	for _, key := range keys {
		lo, hi := nearest(key.Lo), nearest(key.Hi)
		if hi < lo {
			lo = hi
		}
		scores[key] = lo
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return scores[keys[i]] < scores[keys[j]]
	})
	return keys
}
