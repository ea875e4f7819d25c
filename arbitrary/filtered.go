// SPDX-License-Identifier: MIT
package arbitrary

import (
	"math"

	"github.com/katalvlaran/lvlath/beta"
)

// FilterPred reports whether v passes the filter.
type FilterPred func(v Value) bool

// filterState is the only mutable state carried by the arbitrary algebra
// (§3, §4.2 state machine: {Active, Exhausted}).
type filterState struct {
	posterior *beta.Posterior
	exhausted bool
}

// filteredArb repeatedly draws from base until pred accepts, tracking the
// acceptance rate as a Beta posterior so the engine can detect (and stop
// wasting cycles on) a filter whose predicate is nearly always false.
type filteredArb struct {
	base  Arbitrary
	pred  FilterPred
	state *filterState
}

// Filtered returns an Arbitrary that only yields values of base for which
// pred(v) holds. The posterior starts at NewWarmed(2,1) — biased toward
// believing the filter accepts — per §3.
//
// Warning (Design Notes §9, §4.2): the returned Arbitrary carries mutable
// posterior state. Using the *same* Filtered value across two quantifier
// positions shares that state and correlates their acceptance-rate
// estimates; construct two separate Filtered values (or call Reset
// between uses) if independent estimates are required.
func Filtered(base Arbitrary, pred FilterPred) Arbitrary {
	if base == nil || pred == nil {
		return NoArbitrary()
	}
	if IsNoArbitrary(base) {
		return NoArbitrary()
	}

	return filteredArb{
		base: base,
		pred: pred,
		state: &filterState{
			posterior: beta.NewWarmed(2, 1),
		},
	}
}

func (a filteredArb) Name() string { return "filtered(" + a.base.Name() + ")" }

// Reset clears the posterior back to its warmed initial state and
// un-exhausts the filter, letting a Filtered value be reused across runs
// without carrying over a prior belief about the acceptance rate.
func (a filteredArb) Reset() {
	a.state.posterior = beta.NewWarmed(2, 1)
	a.state.exhausted = false
}

func (a filteredArb) Size() Size {
	base := a.base.Size()
	mode := a.state.posterior.Mode()
	value := math.Round(base.Value * mode)

	loQ, errLo := a.state.posterior.Inv(0.05)
	if errLo != nil {
		loQ = mode
	}
	hiQ, errHi := a.state.posterior.Inv(0.95)
	if errHi != nil {
		hiQ = mode
	}

	lo := math.Floor(base.Lo * loQ)
	hi := math.Ceil(base.Hi * hiQ)

	return EstimatedSize(value, lo, hi)
}

// exhaustionThreshold reports whether the posterior's upper credible
// bound makes continued sampling futile: baseSize*inv(0.95) < 1 (§4.2).
func (a filteredArb) exhaustionThreshold() bool {
	base := a.base.Size()
	hiQ, err := a.state.posterior.Inv(0.95)
	if err != nil {
		return false
	}

	return base.Value*hiQ < 1
}

// maxFilterAttempts bounds the pick loop as a hard backstop even before
// the posterior-driven early termination kicks in, so a pathological
// base/predicate combination can never spin forever (§4.2: "the loop
// MUST eventually exit regardless of the generator stream").
const maxFilterAttempts = 10000

func (a filteredArb) Pick(rng RNG) (Pick, bool) {
	if a.state.exhausted {
		return Pick{}, false
	}

	if a.exhaustionThreshold() {
		a.state.exhausted = true
		return Pick{}, false
	}

	for attempt := 0; attempt < maxFilterAttempts; attempt++ {
		p, ok := a.base.Pick(rng)
		if !ok {
			a.state.exhausted = true
			return Pick{}, false
		}

		if a.pred(p.Value) {
			a.state.posterior.Update(true)
			return WithOriginal(p.Value, p.Original), true
		}

		a.state.posterior.Update(false)
		if a.exhaustionThreshold() {
			a.state.exhausted = true
			return Pick{}, false
		}
	}

	a.state.exhausted = true

	return Pick{}, false
}

func (a filteredArb) CanGenerate(p Pick) bool {
	return a.base.CanGenerate(p) && a.pred(p.Value)
}

// CornerCases filters the base's corner cases through pred, so the
// Biased sampler never front-loads a value the filter would reject.
func (a filteredArb) CornerCases() []Pick {
	var out []Pick
	for _, cc := range a.base.CornerCases() {
		if a.pred(cc.Value) {
			out = append(out, cc)
		}
	}

	return out
}

// Shrink narrows base toward initial and re-wraps with the same
// predicate; this is correctness-critical (§8 invariant 2): every
// produced value must still satisfy pred, so the shrunk Filtered keeps
// filtering even though its base space is smaller.
func (a filteredArb) Shrink(initial Pick) Arbitrary {
	narrowedBase := a.base.Shrink(initial)

	return Filtered(narrowedBase, a.pred)
}

func (a filteredArb) HashCode(v Value) uint64 { return deepHash(v) }

func (a filteredArb) Equal(x, y Value) bool { return deepEqual(x, y) }
