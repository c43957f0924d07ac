// File: options.go
// Role: functional options and sentinel errors for the Dijkstra pass.
// Option constructors validate and panic on meaningless inputs; the
// algorithm itself only returns errors.
package dijkstra

import (
	"errors"
	"math"
)

var (
	// ErrEmptySource indicates no source vertex was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates the graph does not carry weights;
	// shortest paths over uniform edges belong to BFS, not here.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates the source vertex is absent from the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight, detected by the
	// upfront edge scan before any relaxation happens.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Unreachable is the distance reported for vertices the source cannot
// reach.
const Unreachable = math.MaxInt64

// Options configures one Dijkstra execution.
type Options struct {
	// Source is the starting vertex ID; required.
	Source string

	// ReturnPath requests the predecessor map alongside distances.
	ReturnPath bool

	// MaxDistance caps exploration: vertices whose shortest distance
	// exceeds it are never finalized. Defaults to no cap.
	MaxDistance int64

	// InfEdgeThreshold treats edges with weight >= the threshold as
	// impassable. Defaults to no threshold.
	InfEdgeThreshold int64
}

// Option mutates Options before the run starts.
type Option func(*Options)

// Source sets the starting vertex.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath requests the predecessor map; without it the second
// return value of Dijkstra is nil.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps the explored distance. Panics on a negative cap.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic("dijkstra: WithMaxDistance requires a non-negative value")
	}
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold marks edges with weight >= threshold impassable.
// Panics on a non-positive threshold.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic("dijkstra: WithInfEdgeThreshold requires a positive value")
	}
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

func resolveOptions(opts []Option) Options {
	o := Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
