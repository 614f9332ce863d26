package builder

import "math/rand"

// config aggregates the knobs every constructor in this package reads.
// It is resolved once per call from functional Options, the same pattern
// package engine uses for its own config.
type config struct {
	rng    *rand.Rand
	jitter float64 // fraction of edge length; 0 disables jitter
}

// Option customizes a builder constructor.
type Option func(*config)

// WithRand supplies an explicit RNG for stochastic constructors
// (RandomPoints, or WithJitter on any shape). Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a new deterministic RNG from seed. Prefer this over
// WithRand in tests and examples so results are reproducible from the
// seed value alone.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithJitter perturbs each generated point by up to the given fraction of
// the shape's characteristic edge length, in a random direction. Requires
// WithSeed or WithRand; panics if fraction is negative.
func WithJitter(fraction float64) Option {
	if fraction < 0 {
		panic("builder: WithJitter(fraction<0)")
	}
	return func(c *config) { c.jitter = fraction }
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
