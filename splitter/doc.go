// Package splitter drives the road network to completion: it loads the
// shortest-path oracle, orders the input edges by ascending distance to
// their nearest quarry, and recursively splits each edge until every piece
// of road is served by exactly one quarry with enough material left to
// build it.
//
// An edge is split in two situations. A watershed split cuts at the point
// where two quarries' delivered-path lengths along the edge are equal; a
// capacity split cuts at the maximum length the current quarry's remaining
// stockpile can still pave, exhausts that quarry, and sends the remainder
// back through the same procedure.
//
// Calculate is single-threaded and owns all state for its lifetime. On
// failure the underlying network is left in an observably partial state
// the caller may inspect.
package splitter
