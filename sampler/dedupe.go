// SPDX-License-Identifier: MIT
package sampler

import "github.com/katalvlaran/lvlath/arbitrary"

// dedupingSampler wraps another Sampler, keeping a seen-set keyed by the
// arbitrary's hashCode/equals and applying a progress guard when
// consecutive draws keep colliding, per §4.3 "Deduping".
type dedupingSampler struct {
	inner Sampler
	arb   arbitrary.Arbitrary
	guard int
}

// Deduping wraps inner so that Sample only returns values distinct under
// arb's HashCode/Equal, stopping early once guard consecutive draws in a
// row are duplicates (WithProgressGuard overrides the default of 50).
func Deduping(inner Sampler, arb arbitrary.Arbitrary, opts ...Option) Sampler {
	cfg := newConfig(opts...)

	return dedupingSampler{inner: inner, arb: arb, guard: cfg.progressGuard}
}

// seenBucket groups values that collide on HashCode, disambiguated by
// Equal — a textbook hash-bucket dedup since arbitrary.Value has no
// guaranteed comparability for use as a raw map key.
type seenBucket struct {
	values []arbitrary.Value
}

func (s dedupingSampler) Sample(n int) ([]arbitrary.Pick, error) {
	if s.arb == nil || arbitrary.IsNoArbitrary(s.arb) {
		return nil, ErrNilArbitrary
	}
	if n < 0 {
		return nil, ErrInvalidSize
	}

	out := make([]arbitrary.Pick, 0, n)
	seen := make(map[uint64]*seenBucket)
	consecutiveDuplicates := 0

	// Draw in small batches from the inner sampler until n distinct
	// values are collected, the inner sampler stops producing anything,
	// or the progress guard trips.
	for len(out) < n {
		batch, err := s.inner.Sample(n - len(out))
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}

		progressed := false
		for _, p := range batch {
			if len(out) >= n {
				break
			}

			h := s.arb.HashCode(p.Value)
			bucket, exists := seen[h]
			duplicate := false
			if exists {
				for _, v := range bucket.values {
					if s.arb.Equal(v, p.Value) {
						duplicate = true

						break
					}
				}
			}

			if duplicate {
				consecutiveDuplicates++
				if consecutiveDuplicates >= s.guard {
					return out, nil
				}

				continue
			}

			consecutiveDuplicates = 0
			progressed = true
			if !exists {
				bucket = &seenBucket{}
				seen[h] = bucket
			}
			bucket.values = append(bucket.values, p.Value)
			out = append(out, p)
		}

		if !progressed {
			break
		}
	}

	return out, nil
}
