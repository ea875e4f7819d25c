// SPDX-License-Identifier: MIT
package sampler

import "github.com/katalvlaran/lvlath/arbitrary"

// Sampler draws a bounded sequence of Picks from an underlying arbitrary.
type Sampler interface {
	// Sample draws up to n Picks. A pick that fails (e.g. filter
	// exhaustion) is simply omitted; the returned slice may therefore be
	// shorter than n.
	Sample(n int) ([]arbitrary.Pick, error)
}

// uniformSampler draws plain pick() calls, per §4.3 "Uniform random".
type uniformSampler struct {
	arb arbitrary.Arbitrary
	cfg config
}

// Uniform returns a Sampler that repeatedly calls arb.Pick with no bias.
func Uniform(arb arbitrary.Arbitrary, opts ...Option) Sampler {
	return uniformSampler{arb: arb, cfg: newConfig(opts...)}
}

func (s uniformSampler) Sample(n int) ([]arbitrary.Pick, error) {
	if s.arb == nil || arbitrary.IsNoArbitrary(s.arb) {
		return nil, ErrNilArbitrary
	}
	if n < 0 {
		return nil, ErrInvalidSize
	}

	out := make([]arbitrary.Pick, 0, n)
	for i := 0; i < n; i++ {
		p, ok := s.arb.Pick(s.cfg.rng)
		if !ok {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

// biasedSampler emits cornerCases first, then random fill, per §4.3
// "Biased".
type biasedSampler struct {
	arb arbitrary.Arbitrary
	cfg config
}

// Biased returns a Sampler that front-loads arb.CornerCases() before
// falling back to uniform draws for the remainder of the requested size.
func Biased(arb arbitrary.Arbitrary, opts ...Option) Sampler {
	return biasedSampler{arb: arb, cfg: newConfig(opts...)}
}

func (s biasedSampler) Sample(n int) ([]arbitrary.Pick, error) {
	if s.arb == nil || arbitrary.IsNoArbitrary(s.arb) {
		return nil, ErrNilArbitrary
	}
	if n < 0 {
		return nil, ErrInvalidSize
	}

	out := make([]arbitrary.Pick, 0, n)
	corners := s.arb.CornerCases()
	for _, p := range corners {
		if len(out) >= n {
			return out, nil
		}
		out = append(out, p)
	}

	for len(out) < n {
		p, ok := s.arb.Pick(s.cfg.rng)
		if !ok {
			break
		}
		out = append(out, p)
	}

	return out, nil
}
