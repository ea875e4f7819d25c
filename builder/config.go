package builder

import "math/rand"

// BuilderOption customizes a Constructor's behavior by mutating a
// builderConfig before graph construction begins.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the resolved parameters shared by constructors.
// rng is nil unless WithRand supplies one; stochastic constructors that
// need randomness reject a nil rng rather than silently going
// deterministic.
type builderConfig struct {
	rng *rand.Rand
}

// newBuilderConfig resolves defaults, then applies each option in order.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRand sets the RNG source for stochastic constructors. A nil rng is a
// no-op, leaving the config's RNG unset.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}
