// Package pathindex is the shortest-path oracle: for every vertex v and
// every quarry q it tracks the distance d(v,q) and a pointer next(v,q) to
// the next vertex on a shortest path from v toward q.
//
// The initial table is computed once, up front, by running this module's
// Dijkstra (github.com/roadquarry/quarrynet/dijkstra) from every quarry
// over a github.com/roadquarry/quarrynet/core.Graph mirror of the road
// network — one full all-sources pass. From that point on, Index never
// reruns Dijkstra: every subsequent change is an edge split, and OnSplit
// repairs the table locally in O(quarries) time, keeping distances and
// next-hops current as the network grows finer.
package pathindex
