package pathindex

import (
	"sort"

	"github.com/roadquarry/quarrynet/quarrynet"
)

// DistanceScale converts this module's float64 lengths into the integer
// weights the dijkstra package requires (it operates on int64 edge
// weights). Lengths are multiplied by DistanceScale and rounded before
// the initial all-sources Dijkstra pass, then divided back out; since every
// edge in a given network is scaled identically, sums of scaled integer
// weights convert back to the same float64 totals a float64 Dijkstra would
// have produced, to within 1/DistanceScale — far finer than the tolerances
// this module compares against.
const DistanceScale = 1e6

// Index is the shortest-path oracle: for every (vertex, quarry) pair it
// holds the distance and the next hop toward that quarry.
type Index struct {
	dist map[quarrynet.VertexID]map[quarrynet.VertexID]float64
	next map[quarrynet.VertexID]map[quarrynet.VertexID]quarrynet.VertexID
}

// Distance returns d(v,q), or +Inf if q is unreachable from v.
func (idx *Index) Distance(v, q quarrynet.VertexID) float64 {
	row, ok := idx.dist[v]
	if !ok {
		return posInf
	}
	d, ok := row[q]
	if !ok {
		return posInf
	}
	return d
}

// Next returns the next vertex on a shortest path from v toward q, or
// quarrynet.NoVertex if v == q or q is unreachable from v.
func (idx *Index) Next(v, q quarrynet.VertexID) quarrynet.VertexID {
	row, ok := idx.next[v]
	if !ok {
		return quarrynet.NoVertex
	}
	return row[q]
}

// Quarries returns the quarry ids this index was built against, ascending.
func (idx *Index) Quarries() []quarrynet.VertexID {
	seen := map[quarrynet.VertexID]struct{}{}
	for _, row := range idx.dist {
		for q := range row {
			seen[q] = struct{}{}
		}
	}
	out := make([]quarrynet.VertexID, 0, len(seen))
	for q := range seen {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
