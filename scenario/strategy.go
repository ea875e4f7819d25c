// SPDX-License-Identifier: MIT
package scenario

import "github.com/katalvlaran/lvlath/arbitrary"

// Shrinking strategy names recognized by WithShrinkingStrategy, matching
// §6's literal option values.
const (
	SequentialExhaustive = "sequential-exhaustive"
	RoundRobin           = "round-robin"
)

// Default strategy knobs. DefaultSampleSize/DefaultMaxIterations mirror
// the Fixed/Confidence stopping defaults used when a caller supplies
// neither; DefaultCredibleWidth matches §4.1's σ=0.90 default credible
// width.
const (
	DefaultSampleSize        = 100
	DefaultMaxIterations     = 100000
	DefaultConfidence        = 0.95
	DefaultPassRateThreshold = 0.99
	DefaultCredibleWidth     = 0.90
	DefaultShrinkAttempts    = 1000
)

// PRNGFactory builds an RNG from a seed, the "prngFactory" half of §6's
// withRandomGenerator(prngFactory, seed) reproducibility hook.
type PRNGFactory func(seed int64) arbitrary.RNG

// Strategy bundles every `config(strategy)` knob named in §6. It is built
// via functional StrategyOptions over NewStrategy, following the same
// `type Option func(*cfg)` idiom as builder.BuilderOption / sampler.Option.
type Strategy struct {
	sampleSize        int
	confidence        float64
	passRateThreshold float64
	minConfidence     float64
	maxIterations     int

	rngFactory PRNGFactory
	seed       int64

	statistics         bool
	detailedStatistics bool

	bias bool

	shrinking      bool
	shrinkAttempts int
	shrinkStrategy string

	credibleIntervalWidth float64
}

// StrategyOption mutates a Strategy being built by NewStrategy.
type StrategyOption func(*Strategy)

func defaultStrategy() Strategy {
	return Strategy{
		sampleSize:            DefaultSampleSize,
		confidence:            DefaultConfidence,
		passRateThreshold:     DefaultPassRateThreshold,
		maxIterations:         DefaultMaxIterations,
		rngFactory:            func(seed int64) arbitrary.RNG { return arbitrary.NewRandRNG(seed) },
		bias:                  true,
		shrinking:             true,
		shrinkAttempts:        DefaultShrinkAttempts,
		shrinkStrategy:        SequentialExhaustive,
		credibleIntervalWidth: DefaultCredibleWidth,
	}
}

// NewStrategy resolves a Strategy from sensible defaults plus opts applied
// left to right, mirroring builder.newBuilderConfig's resolution order.
func NewStrategy(opts ...StrategyOption) Strategy {
	s := defaultStrategy()
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithSampleSize sets the Fixed stopping rule's target (§6 withSampleSize).
func WithSampleSize(n int) StrategyOption {
	return func(s *Strategy) { s.sampleSize = n }
}

// WithConfidence sets the Bayesian stopping target level in [0,1] (§6
// withConfidence).
func WithConfidence(level float64) StrategyOption {
	return func(s *Strategy) { s.confidence = level }
}

// WithPassRateThreshold sets the confidence rule's null-hypothesis pass
// rate (§6 withPassRateThreshold).
func WithPassRateThreshold(p float64) StrategyOption {
	return func(s *Strategy) { s.passRateThreshold = p }
}

// WithMinConfidence records a confidence floor in the Strategy (§6
// withMinConfidence) and carries it through the YAML strategy file. No
// Check* method reads it: a Fixed sampleSize termination is honored
// whether or not the floor has been reached.
func WithMinConfidence(level float64) StrategyOption {
	return func(s *Strategy) { s.minConfidence = level }
}

// WithMaxIterations sets a hard cap irrespective of the active stopping
// rule (§6 withMaxIterations).
func WithMaxIterations(n int) StrategyOption {
	return func(s *Strategy) { s.maxIterations = n }
}

// WithRandomGenerator installs a reproducibility hook: factory builds the
// RNG used by every Sampler this run constructs, seeded with seed (§6
// withRandomGenerator). Panics on a nil factory, matching the teacher's
// fail-fast option-constructor convention (builder.WithRand).
func WithRandomGenerator(factory PRNGFactory, seed int64) StrategyOption {
	if factory == nil {
		panic("scenario: WithRandomGenerator(nil factory)")
	}

	return func(s *Strategy) {
		s.rngFactory = factory
		s.seed = seed
	}
}

// WithStatistics toggles whether FluentStatistics.Labels/CoverageResults
// and collectors are populated at all (§6 withStatistics(bool)).
func WithStatistics(enabled bool) StrategyOption {
	return func(s *Strategy) { s.statistics = enabled }
}

// WithDetailedStatistics additionally enables per-arbitrary distribution
// tracking (§6 withDetailedStatistics()).
func WithDetailedStatistics() StrategyOption {
	return func(s *Strategy) {
		s.statistics = true
		s.detailedStatistics = true
	}
}

// WithBias enables corner-case-prioritized sampling (§6 withBias()).
func WithBias() StrategyOption {
	return func(s *Strategy) { s.bias = true }
}

// WithoutBias disables corner-case prioritization, falling back to
// uniform sampling (§6 withoutBias()).
func WithoutBias() StrategyOption {
	return func(s *Strategy) { s.bias = false }
}

// WithShrinking enables shrinking on failure with the given attempt
// budget (§6 withShrinking(attempts)).
func WithShrinking(attempts int) StrategyOption {
	return func(s *Strategy) {
		s.shrinking = true
		s.shrinkAttempts = attempts
	}
}

// WithoutShrinking disables shrinking; a failing run reports its raw
// counterexample (§6 withoutShrinking()).
func WithoutShrinking() StrategyOption {
	return func(s *Strategy) { s.shrinking = false }
}

// WithShrinkingStrategy selects the shrink.Strategy by name (§6
// withShrinkingStrategy). An unrecognized name makes Strategy.Validate
// return ErrUnknownShrinkStrategy, so Check* reports it before any test
// runs.
func WithShrinkingStrategy(name string) StrategyOption {
	return func(s *Strategy) { s.shrinkStrategy = name }
}

// WithCredibleIntervalWidth sets the two-sided credible interval width
// reported alongside confidence (§6 withCredibleIntervalWidth; default
// 0.90 per §4.1).
func WithCredibleIntervalWidth(width float64) StrategyOption {
	return func(s *Strategy) { s.credibleIntervalWidth = width }
}

// Validate reports whether the strategy's shrinkStrategy name is
// recognized; called once at compile time so an unknown name surfaces
// before any test runs rather than silently falling back.
func (s Strategy) Validate() error {
	switch s.shrinkStrategy {
	case SequentialExhaustive, RoundRobin, "":
		return nil
	default:
		return ErrUnknownShrinkStrategy
	}
}
