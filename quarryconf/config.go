package quarryconf

import (
	"io"

	"github.com/rs/zerolog"
)

// DefaultMaxSplitDepth bounds the edges-splitter recursion:
// "implementations should still bound recursion depth and fail with Runaway
// splitting if exceeded". 64 comfortably exceeds the depth any legitimate
// watershed/capacity cascade reaches on the fixtures this module ships with,
// while still catching genuine numerical degeneracy quickly.
const DefaultMaxSplitDepth = 64

// Config bundles the tunable parameters the splitter pipeline needs:
// tolerance, road cross-section (used to convert length into required
// material volume), the recursion-depth guard, and a logger.
type Config struct {
	// Tolerance is used by every numerical comparison in geometry, pathindex
	// and splitter.
	Tolerance Tolerance

	// RoadWidth and RoadHeight multiply a road segment's length to obtain
	// the material volume it requires.
	RoadWidth  float64
	RoadHeight float64

	// UnitCost scales the haul-cost integral (length*dist + length^2/2)
	// reported per assigned edge.
	UnitCost float64

	// MaxSplitDepth bounds construct_edge recursion; exceeding it yields
	// ErrRunawaySplitting.
	MaxSplitDepth int

	// Logger receives structured diagnostics from quarrynet and splitter. The zero Config gets a disabled logger (see New), so callers
	// that don't care about logging never pay for it.
	Logger zerolog.Logger
}

// Option configures a Config being built by New.
type Option func(*Config)

// WithTolerance overrides the default tolerance.
func WithTolerance(tol Tolerance) Option {
	return func(c *Config) { c.Tolerance = tol }
}

// WithRoadDimensions sets the road cross-section (width * height) used to
// convert edge length into required quarry volume.
func WithRoadDimensions(width, height float64) Option {
	return func(c *Config) {
		c.RoadWidth = width
		c.RoadHeight = height
	}
}

// WithUnitCost sets the per-unit haul cost multiplier.
func WithUnitCost(cost float64) Option {
	return func(c *Config) { c.UnitCost = cost }
}

// WithMaxSplitDepth overrides the recursion-depth guard.
func WithMaxSplitDepth(depth int) Option {
	return func(c *Config) { c.MaxSplitDepth = depth }
}

// WithLogger attaches a logger; pass zerolog.New(os.Stderr) or similar for
// visible diagnostics, or zerolog.Nop() to silence them explicitly.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// New builds a Config with RoadWidth=RoadHeight=UnitCost=1,
// DefaultTolerance, DefaultMaxSplitDepth, and a disabled (silent) logger,
// then applies opts in order.
func New(opts ...Option) Config {
	cfg := Config{
		Tolerance:     DefaultTolerance(),
		RoadWidth:     1,
		RoadHeight:    1,
		UnitCost:      1,
		MaxSplitDepth: DefaultMaxSplitDepth,
		Logger:        zerolog.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// RoadCrossSection returns RoadWidth*RoadHeight, the volume required per
// unit length of road.
func (c Config) RoadCrossSection() float64 {
	return c.RoadWidth * c.RoadHeight
}
