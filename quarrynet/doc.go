// Package quarrynet owns the road network store: vertices, edges with
// embedded polyline geometry, the quarry capacity table, and the
// edge-to-quarry assignment table.
//
// Network is the single owner of this state for the lifetime of one
// splitter run. It is not safe for concurrent use: the whole pipeline is
// single-threaded and synchronous, so Network carries no internal locking
// and is built for one exclusive owner.
package quarrynet
