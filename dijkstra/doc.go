// Package dijkstra computes single-source shortest paths over a weighted
// core.Graph with non-negative integer edge weights.
//
// The implementation is the classic binary-heap variant with lazy
// decrease-key: improved distances push a fresh heap entry and stale
// entries are skipped on pop. Time O((V+E) log V), space O(V+E).
//
// The pathindex package runs one pass per quarry at load time; the
// MaxDistance and InfEdgeThreshold options exist for callers that want to
// bound exploration or treat heavy edges as impassable.
package dijkstra
