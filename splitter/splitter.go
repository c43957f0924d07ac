// File: splitter.go
// Role: the recursive edges-splitter driver — Calculate, constructEdge,
// watershed and capacity splits, capacity accounting.
package splitter

import (
	"fmt"

	"github.com/roadquarry/quarrynet/pathindex"
	"github.com/roadquarry/quarrynet/quarryconf"
	"github.com/roadquarry/quarrynet/quarrynet"
)

// Splitter assigns every point of every edge of a road network to exactly
// one quarry, splitting edges at the geometric locations where the
// nearest-quarry assignment changes or a quarry's stockpile runs out.
type Splitter struct {
	net *quarrynet.Network
	cfg quarryconf.Config
	idx *pathindex.Index

	result Result
}

// Result summarizes a successful Calculate run. TotalCost is the summed
// haul-cost integral over assigned edges — length*dist(near, quarry) +
// length^2/2, scaled by UnitCost — exposed so a network builder can use the
// splitter as a cost oracle per candidate tree.
type Result struct {
	TotalVolumeUsed float64
	TotalCost       float64
	SplitCount      int
}

// New builds a Splitter over net. cfg supplies the tolerance, road
// cross-section, recursion-depth limit and logger; it is normally the same
// Config the network was constructed with.
func New(net *quarrynet.Network, cfg quarryconf.Config) *Splitter {
	return &Splitter{net: net, cfg: cfg}
}

// Calculate executes the pipeline to completion: initial all-sources
// shortest-path load, edge ordering, then the per-edge recursive
// construction. On error the network is left partially processed for the
// caller to inspect.
func (s *Splitter) Calculate() (*Result, error) {
	idx, err := pathindex.Build(s.net)
	if err != nil {
		return nil, wrapf("Calculate", err)
	}
	s.idx = idx
	s.result = Result{}

	for _, key := range orderedEdges(s.net, s.idx) {
		if err := s.constructEdge(key, 0); err != nil {
			return nil, wrapf("Calculate", err)
		}
	}

	s.cfg.Logger.Debug().
		Float64("volume", s.result.TotalVolumeUsed).
		Float64("cost", s.result.TotalCost).
		Int("splits", s.result.SplitCount).
		Msg("splitter: calculation complete")

	out := s.result
	return &out, nil
}

// constructEdge is the per-edge recursive procedure. It orients the edge so
// u is the endpoint nearer to its own nearest non-empty quarry, then either
// splits the edge at the watershed between the two endpoints' quarries and
// recurses, or hands the whole edge to assignOrCapSplit.
func (s *Splitter) constructEdge(key quarrynet.EdgeKey, depth int) error {
	if depth > s.cfg.MaxSplitDepth {
		return fmt.Errorf("%w: depth %d on edge %d-%d", ErrRunawaySplitting, depth, key.Lo, key.Hi)
	}

	e, ok := s.net.Edge(key)
	if !ok {
		return wrapf("constructEdge", quarrynet.ErrEdgeNotFound)
	}

	tol := s.cfg.Tolerance
	u, v := e.First, e.Last
	inverted := false

	qU, okU := pathindex.NearestNonEmptyQuarry(s.idx, s.net, u, tol)
	qV, okV := pathindex.NearestNonEmptyQuarry(s.idx, s.net, v, tol)
	if !okU || !okV {
		blocked := u
		if okU {
			blocked = v
		}
		return fmt.Errorf("%w: no reachable quarry with capacity for vertex %d", ErrCapacityExhausted, blocked)
	}

	dU := s.idx.Distance(u, qU)
	dV := s.idx.Distance(v, qV)

	// u is always the near endpoint.
	if dU > dV {
		u, v = v, u
		qU, qV = qV, qU
		dU, dV = dV, dU
		inverted = true
	}

	// When the far end is effectively equidistant from both quarries,
	// prefer the one already feeding the near end; this collapses spurious
	// splits.
	if qU != qV && tol.Equal(s.idx.Distance(v, qU), dV) {
		qV = qU
		dV = s.idx.Distance(v, qU)
	}

	length := e.Weight

	// The edge must be split when the two ends are served by different
	// quarries, or by the same quarry over paths that do not traverse the
	// whole edge.
	if qU != qV || !tol.Equal(dV, dU+length) {
		watershed := (length + (dV - dU)) / 2

		if !tol.InOpenInterval(watershed, 0, length) {
			// The watershed sits within tolerance of an endpoint: the edge
			// is already as split as it can be, so the quarry whose service
			// region covers it takes the whole edge.
			if watershed*2 >= length {
				return s.assignOrCapSplit(key, qU, dU, inverted, depth)
			}
			return s.assignOrCapSplit(key, qV, dV, !inverted, depth)
		}

		nearKey, farKey, err := s.split(key, watershed, inverted)
		if err != nil {
			return err
		}

		s.cfg.Logger.Debug().
			Int64("u", int64(u)).Int64("v", int64(v)).
			Float64("watershed", watershed).
			Msg("splitter: watershed split")

		if err := s.constructEdge(nearKey, depth+1); err != nil {
			return err
		}
		return s.constructEdge(farKey, depth+1)
	}

	return s.assignOrCapSplit(key, qU, dU, inverted, depth)
}

// assignOrCapSplit handles an edge entirely served by quarry q, whose near
// endpoint lies at distance dNear from q. If the stockpile covers the whole
// edge the edge is finalized; otherwise the maximal affordable prefix is
// carved off and bound to q, q is exhausted, and the remainder re-enters
// constructEdge. inverted reports that the near endpoint is the edge's last
// point, so split lengths are measured from the far end of the stored
// polyline.
func (s *Splitter) assignOrCapSplit(key quarrynet.EdgeKey, q quarrynet.VertexID, dNear float64, inverted bool, depth int) error {
	e, ok := s.net.Edge(key)
	if !ok {
		return wrapf("assignOrCapSplit", quarrynet.ErrEdgeNotFound)
	}

	tol := s.cfg.Tolerance
	cross := s.cfg.RoadCrossSection()
	length := e.Weight
	required := length * cross

	capacity, err := s.net.Capacity(q)
	if err != nil {
		return wrapf("assignOrCapSplit", err)
	}

	if tol.LessOrEqual(required, capacity) {
		if err := s.net.DebitCapacity(q, required); err != nil {
			return wrapf("assignOrCapSplit", err)
		}
		return s.finalize(key, q, length, required, dNear)
	}

	maxLength := capacity / cross

	if !tol.InOpenInterval(maxLength, 0, length) {
		if maxLength*2 >= length {
			// The affordable length is within tolerance of the full edge:
			// build it all and drain the quarry.
			if err := s.net.SetCapacityExhausted(q); err != nil {
				return wrapf("assignOrCapSplit", err)
			}
			return s.finalize(key, q, length, capacity, dNear)
		}
		// The stockpile is within tolerance of empty: exhaust the quarry
		// and route the edge to the next nearest one.
		if err := s.net.SetCapacityExhausted(q); err != nil {
			return wrapf("assignOrCapSplit", err)
		}
		return s.constructEdge(key, depth+1)
	}

	nearKey, farKey, err := s.split(key, maxLength, inverted)
	if err != nil {
		return err
	}

	if err := s.net.SetCapacityExhausted(q); err != nil {
		return wrapf("assignOrCapSplit", err)
	}

	near, ok := s.net.Edge(nearKey)
	if !ok {
		return wrapf("assignOrCapSplit", quarrynet.ErrEdgeNotFound)
	}

	s.cfg.Logger.Debug().
		Int64("quarry", int64(q)).
		Float64("max_length", maxLength).
		Msg("splitter: capacity split")

	if err := s.finalize(nearKey, q, near.Weight, capacity, dNear); err != nil {
		return err
	}
	return s.constructEdge(farKey, depth+1)
}

// split cuts the edge at arc-length measured from the near endpoint and
// returns the near-side and far-side sub-edge keys. The network notifies
// the shortest-path oracle before returning, so both structures stay in
// sync.
func (s *Splitter) split(key quarrynet.EdgeKey, fromNear float64, inverted bool) (nearKey, farKey quarrynet.EdgeKey, err error) {
	_, _, _, keyUW, keyWV, err := s.net.SplitEdge(key, fromNear, inverted, s.idx)
	if err != nil {
		return quarrynet.EdgeKey{}, quarrynet.EdgeKey{}, wrapf("split", err)
	}
	s.result.SplitCount++
	if inverted {
		return keyWV, keyUW, nil
	}
	return keyUW, keyWV, nil
}

// finalize binds edge key to quarry q and accumulates the run totals.
func (s *Splitter) finalize(key quarrynet.EdgeKey, q quarrynet.VertexID, length, volume, dNear float64) error {
	if err := s.net.AssignEdge(key, q); err != nil {
		return wrapf("finalize", err)
	}
	s.result.TotalVolumeUsed += volume
	s.result.TotalCost += s.cfg.UnitCost * (length*dNear + length*length/2)
	return nil
}
