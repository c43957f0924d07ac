// File: options.go
// Role: functional options shared by every fixture constructor. Option
// constructors validate and panic on meaningless inputs; the constructors
// themselves never panic at runtime.
package quarrygen

import (
	"math/rand"

	"github.com/roadquarry/quarrynet/quarryconf"
)

// DefaultSpacing is the distance between adjacent generated vertices.
const DefaultSpacing = 10.0

// DefaultQuarryCapacity is generous enough that default fixtures never hit
// a capacity split; tests that want one override it with WithQuarryAt.
const DefaultQuarryCapacity = 1e6

type quarrySpec struct {
	index    int // 0-based vertex index within the generated topology
	capacity float64
}

type genConfig struct {
	spacing  float64
	cfg      quarryconf.Config
	quarries []quarrySpec
	rng      *rand.Rand
}

// Option customizes a fixture constructor.
type Option func(*genConfig)

// WithSpacing sets the distance between adjacent vertices.
// Panics on non-positive spacing.
func WithSpacing(spacing float64) Option {
	if spacing <= 0 {
		panic("quarrygen: WithSpacing requires a positive value")
	}
	return func(c *genConfig) { c.spacing = spacing }
}

// WithConfig sets the quarryconf.Config the generated network is built
// with (tolerance, road dimensions, logger).
func WithConfig(cfg quarryconf.Config) Option {
	return func(c *genConfig) { c.cfg = cfg }
}

// WithQuarryAt marks the vertex at the given 0-based topology index as a
// quarry with the given capacity. May be repeated; repeated calls replace
// the default single quarry at index 0. Panics on negative capacity.
func WithQuarryAt(index int, capacity float64) Option {
	if capacity < 0 {
		panic("quarrygen: WithQuarryAt requires a non-negative capacity")
	}
	return func(c *genConfig) {
		c.quarries = append(c.quarries, quarrySpec{index: index, capacity: capacity})
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("quarrygen: WithRand(nil)")
	}
	return func(c *genConfig) { c.rng = r }
}

// WithSeed seeds a fresh deterministic RNG for stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

func resolveOptions(opts []Option) genConfig {
	c := genConfig{
		spacing: DefaultSpacing,
		cfg:     quarryconf.New(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if len(c.quarries) == 0 {
		c.quarries = []quarrySpec{{index: 0, capacity: DefaultQuarryCapacity}}
	}
	return c
}
