// File: methods_capacity.go
// Role: quarry capacity accounting and the edge-assignment table.
package quarrynet

// DebitCapacity subtracts amount from quarry q's remaining capacity.
// Returns ErrInsufficientCapacity if the debit would drive capacity
// negative beyond tolerance; callers (the splitter) are expected to have
// already checked LessOrEqual before calling, so this is a defensive
// backstop, not the primary guard.
func (n *Network) DebitCapacity(q VertexID, amount float64) error {
	if _, ok := n.quarries[q]; !ok {
		return wrapf("DebitCapacity", ErrUnknownQuarry)
	}
	remaining := n.capacities[q]
	if !n.cfg.Tolerance.LessOrEqual(amount, remaining) {
		return wrapf("DebitCapacity", ErrInsufficientCapacity)
	}
	remaining -= amount
	if remaining < 0 {
		remaining = 0
	}
	n.capacities[q] = remaining

	n.cfg.Logger.Debug().
		Int64("quarry", int64(q)).
		Float64("amount", amount).
		Float64("remaining", remaining).
		Msg("quarrynet: debited capacity")

	return nil
}

// SetCapacityExhausted forces quarry q's remaining capacity to exactly 0,
// used by the capacity-split branch of construct_edge once the maximal
// affordable sub-edge has been carved off.
func (n *Network) SetCapacityExhausted(q VertexID) error {
	if _, ok := n.quarries[q]; !ok {
		return wrapf("SetCapacityExhausted", ErrUnknownQuarry)
	}
	n.capacities[q] = 0
	return nil
}

// AssignEdge binds the live edge key to quarry q, recording the assignment
// on both the Edge value and the network's assignment table. Returns
// ErrAlreadyAssigned if key was already bound.
func (n *Network) AssignEdge(key EdgeKey, q VertexID) error {
	e, ok := n.edges[key]
	if !ok {
		return wrapf("AssignEdge", ErrEdgeNotFound)
	}
	if e.AssignedQuarry != nil {
		return wrapf("AssignEdge", ErrAlreadyAssigned)
	}
	quarry := q
	e.AssignedQuarry = &quarry
	n.assignment[key] = q

	n.cfg.Logger.Debug().
		Int64("u", int64(e.First)).Int64("v", int64(e.Last)).Int64("quarry", int64(q)).
		Msg("quarrynet: assigned edge")

	return nil
}

// TotalRemainingCapacity sums remaining capacity across every quarry, for
// the volume-conservation property test.
func (n *Network) TotalRemainingCapacity() float64 {
	var total float64
	for _, c := range n.capacities {
		total += c
	}
	return total
}
