// Package core provides the in-memory weighted graph the shortest-path
// oracle mirrors the road network into before running Dijkstra.
//
// The Graph supports directed vs. undirected edges, integer weights,
// optional self-loops, optional parallel edges, and per-edge directedness
// overrides in mixed mode. Mutations and queries are guarded by a single
// RWMutex; enumeration surfaces (Vertices, Edges, Neighbors) return
// deterministically ordered slices so replays are byte-identical.
package core
