package engine

import "github.com/gomesh/refine2d/trait"

// config holds the resolved settings a Run call uses, built up from
// Option values the same way package builder resolves its config.
type config struct {
	traitOpts []trait.Option
	seeds     []int
	maxSteps  int
}

// Option customizes a Run call.
type Option func(*config)

// WithMinAngle sets the minimum interior angle, in degrees, every marked
// triangle must meet. See trait.WithMinAngle for the valid range and the
// termination guarantee it rests on.
func WithMinAngle(degrees float64) Option {
	return func(c *config) {
		c.traitOpts = append(c.traitOpts, trait.WithMinAngle(degrees))
	}
}

// WithMaxArea caps the area any accepted triangle may have. See
// trait.WithMaxArea.
func WithMaxArea(area float64) Option {
	return func(c *config) {
		c.traitOpts = append(c.traitOpts, trait.WithMaxArea(area))
	}
}

// WithSeeds names point indices (into the PSLG's Points slice) whose
// connected unconstrained-adjacent region should be forced into the
// meshed domain, overriding the default even-odd nesting rule. See
// region.MarkSeeds.
func WithSeeds(pointIndices ...int) Option {
	return func(c *config) {
		c.seeds = append(c.seeds, pointIndices...)
	}
}

// WithMaxSteps bounds how many refinement steps Run performs. Zero (the
// default) means unbounded: refine until the queue is empty. Panics if
// steps is negative.
func WithMaxSteps(steps int) Option {
	if steps < 0 {
		panic("engine: WithMaxSteps(steps<0)")
	}
	return func(c *config) {
		c.maxSteps = steps
	}
}
