// File: index.go
// Role: initial all-sources load and the incremental OnSplit repair.
package pathindex

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/roadquarry/quarrynet/core"
	"github.com/roadquarry/quarrynet/dijkstra"
	"github.com/roadquarry/quarrynet/quarryconf"
	"github.com/roadquarry/quarrynet/quarrynet"
)

var posInf = math.Inf(1)

func vertexKey(v quarrynet.VertexID) string {
	return strconv.FormatInt(int64(v), 10)
}

func parseVertexKey(s string) quarrynet.VertexID {
	n, _ := strconv.ParseInt(s, 10, 64)
	return quarrynet.VertexID(n)
}

// Build runs the initial all-sources shortest-path load: one Dijkstra pass
// per quarry over a core.Graph mirror of net's current topology. Fails with
// ErrUnreachable if, after every quarry has been processed, some ordinary
// (non-quarry) vertex still has no finite distance to any quarry.
func Build(net *quarrynet.Network) (*Index, error) {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range net.VertexIDs() {
		_ = g.AddVertex(vertexKey(id))
	}
	for _, e := range net.Edges() {
		scaled := int64(math.Round(e.Weight * DistanceScale))
		if _, err := g.AddEdge(vertexKey(e.First), vertexKey(e.Last), scaled); err != nil {
			return nil, wrapf("Build", fmt.Errorf("mirroring edge %d-%d: %w", e.First, e.Last, err))
		}
	}

	idx := &Index{
		dist: make(map[quarrynet.VertexID]map[quarrynet.VertexID]float64, len(net.VertexIDs())),
		next: make(map[quarrynet.VertexID]map[quarrynet.VertexID]quarrynet.VertexID, len(net.VertexIDs())),
	}
	for _, id := range net.VertexIDs() {
		idx.dist[id] = make(map[quarrynet.VertexID]float64, len(net.Quarries()))
		idx.next[id] = make(map[quarrynet.VertexID]quarrynet.VertexID, len(net.Quarries()))
	}

	for _, q := range net.Quarries() {
		distInt, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(vertexKey(q)), dijkstra.WithReturnPath())
		if err != nil {
			return nil, wrapf("Build", err)
		}
		for key, d := range distInt {
			v := parseVertexKey(key)
			if d == math.MaxInt64 {
				idx.dist[v][q] = posInf
				idx.next[v][q] = quarrynet.NoVertex
				continue
			}
			idx.dist[v][q] = float64(d) / DistanceScale
			if prevKey := prev[key]; prevKey != "" {
				idx.next[v][q] = parseVertexKey(prevKey)
			} else {
				idx.next[v][q] = quarrynet.NoVertex
			}
		}
	}

	var unreachable []quarrynet.VertexID
	for _, v := range net.VertexIDs() {
		if net.IsQuarry(v) {
			continue
		}
		reachable := false
		for _, q := range net.Quarries() {
			if idx.dist[v][q] < posInf {
				reachable = true
				break
			}
		}
		if !reachable {
			unreachable = append(unreachable, v)
		}
	}
	if len(unreachable) > 0 {
		sort.Slice(unreachable, func(i, j int) bool { return unreachable[i] < unreachable[j] })
		return nil, wrapf("Build", fmt.Errorf("%w: vertex %d", ErrUnreachable, unreachable[0]))
	}

	return idx, nil
}

// OnSplit implements quarrynet.SplitObserver: repairs the table after
// Network has split edge (u,v) into (u,w) and (w,v) with weights a, b.
//
// For every quarry q: d(w,q) = min(d(u,q)+a, d(v,q)+b); next(w,q) records
// which side won. For every quarry q whose next(u,q) pointed at v, that
// pointer is redirected to w (w now lies between u and q on that path), and
// symmetrically for v.
func (idx *Index) OnSplit(u, w, v quarrynet.VertexID, weightUW, weightWV float64) {
	idx.dist[w] = make(map[quarrynet.VertexID]float64, len(idx.dist[u]))
	idx.next[w] = make(map[quarrynet.VertexID]quarrynet.VertexID, len(idx.dist[u]))

	for _, q := range idx.Quarries() {
		viaU := idx.dist[u][q] + weightUW
		viaV := idx.dist[v][q] + weightWV
		if viaU <= viaV {
			idx.dist[w][q] = viaU
			idx.next[w][q] = u
		} else {
			idx.dist[w][q] = viaV
			idx.next[w][q] = v
		}
	}

	for q, nxt := range idx.next[u] {
		if nxt == v {
			idx.next[u][q] = w
		}
	}
	for q, nxt := range idx.next[v] {
		if nxt == u {
			idx.next[v][q] = w
		}
	}
}

// NearestNonEmptyQuarry returns the quarry q with smallest d(v,q) among
// those with capacity(q) > 0 within tolerance, breaking ties by the lowest
// quarry id. Returns ok=false if every reachable quarry is empty.
func NearestNonEmptyQuarry(idx *Index, net *quarrynet.Network, v quarrynet.VertexID, tol quarryconf.Tolerance) (q quarrynet.VertexID, ok bool) {
	var (
		best    quarrynet.VertexID
		bestSet bool
		bestD   float64
	)
	for _, candidate := range net.Quarries() {
		capacity, err := net.Capacity(candidate)
		if err != nil || tol.IsZero(capacity) {
			continue
		}
		d := idx.Distance(v, candidate)
		if d == posInf {
			continue
		}
		if !bestSet || tol.StrictlyLess(d, bestD) || (tol.Equal(d, bestD) && candidate < best) {
			best, bestD, bestSet = candidate, d, true
		}
	}
	return best, bestSet
}
