// SPDX-License-Identifier: MIT
package sampler

import "github.com/katalvlaran/lvlath/arbitrary"

// cachedSampler memoizes Sample results by requested size, trading
// per-quantifier independence for avoided recomputation, per §4.3
// "Cached … reduces work at the cost of per-quantifier independence
// (documented as a trade-off)".
type cachedSampler struct {
	inner Sampler
	memo  map[int][]arbitrary.Pick
}

// Cached wraps inner so repeated Sample(n) calls with the same n return
// the same (recomputed once) slice rather than drawing fresh values each
// time. Intended for arbitraries reused across multiple quantifier
// positions within one scenario where independence is not required.
func Cached(inner Sampler) Sampler {
	return &cachedSampler{inner: inner, memo: make(map[int][]arbitrary.Pick)}
}

func (s *cachedSampler) Sample(n int) ([]arbitrary.Pick, error) {
	if cached, ok := s.memo[n]; ok {
		return cached, nil
	}

	out, err := s.inner.Sample(n)
	if err != nil {
		return nil, err
	}

	s.memo[n] = out

	return out, nil
}
