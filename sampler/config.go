// SPDX-License-Identifier: MIT
package sampler

import (
	"math/rand"

	"github.com/katalvlaran/lvlath/arbitrary"
)

// DefaultProgressGuard is the number of consecutive duplicate draws a
// Deduping sampler tolerates before giving up early, per §4.3 ("default
// N=50").
const DefaultProgressGuard = 50

// config collects the resolved state of a sampler's functional options. Mirrors the teacher's builderConfig/newBuilderConfig split.
type config struct {
	rng           arbitrary.RNG
	progressGuard int
}

// Option customizes a sampler's behavior by mutating a config instance
// before sampling begins.
type Option func(*config)

// WithSeed creates a new deterministic RNG from seed. Use in tests and
// examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = arbitrary.NewRandRNG(seed)
	}
}

// WithRand installs an explicit RNG. Panics on nil, matching the
// teacher's fail-fast option-constructor convention.
func WithRand(rng arbitrary.RNG) Option {
	if rng == nil {
		panic("sampler: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = rng
	}
}

// WithProgressGuard overrides Deduping's consecutive-duplicate cutoff.
// Panics on n<=0.
func WithProgressGuard(n int) Option {
	if n <= 0 {
		panic("sampler: WithProgressGuard(n<=0)")
	}

	return func(c *config) {
		c.progressGuard = n
	}
}

func newConfig(opts ...Option) config {
	c := config{
		rng:           arbitrary.NewRandRNG(rand.Int63()),
		progressGuard: DefaultProgressGuard,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
