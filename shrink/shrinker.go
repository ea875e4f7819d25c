// SPDX-License-Identifier: MIT
package shrink

import (
	"sort"

	"github.com/katalvlaran/lvlath/arbitrary"
)

// Stats reports what one shrink session did, the shrinkingStats member of
// FluentStatistics.
type Stats struct {
	Rounds       int
	Attempts     int
	Improvements int
}

// Strategy searches for a smaller falsifying tuple starting from
// counterexample, per §4.6.
type Strategy interface {
	Shrink(quantifiers []Quantifier, counterexample Bindings, pred Predicate, budget Budget) (Bindings, Stats)
}

// session carries the mutable state shared by both strategies' inner loop.
type session struct {
	quantifiers []Quantifier
	pred        Predicate
	budget      Budget
	current     Bindings
	attempts    int
	improved    int
	rngSeed     int64
}

// shrinkOnce attempts to narrow a single quantifier's bound value as far
// as the inner loop of §4.6 describes: (a) call arb.Shrink(currentPick) to
// get a narrower arbitrary; (b) draw budget.candidates() picks from it,
// sorted smallest first; (c) accept the first that still falsifies; (d) on acceptance,
// update current and restart on this quantifier. Returns true if at least
// one acceptance happened.
func (s *session) shrinkOnce(q Quantifier) bool {
	anyImprovement := false

	for {
		if s.budget.MaxAttempts > 0 && s.attempts >= s.budget.MaxAttempts {
			return anyImprovement
		}

		currentValue := s.current[q.Name]
		narrowed := q.Arb.Shrink(arbitrary.NewPick(currentValue))
		if arbitrary.IsNoArbitrary(narrowed) {
			return anyImprovement
		}

		s.rngSeed++
		rng := arbitrary.NewRandRNG(s.rngSeed)

		type candidate struct {
			pick   arbitrary.Pick
			metric float64
		}

		n := s.budget.candidates()
		candidates := make([]candidate, 0, n)
		for i := 0; i < n; i++ {
			p, ok := narrowed.Pick(rng)
			if !ok {
				continue
			}
			candidates = append(candidates, candidate{pick: p, metric: structuralMetric(p.Value)})
		}
		if len(candidates) == 0 {
			return anyImprovement
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].metric < candidates[j].metric
		})

		accepted := false
		for _, c := range candidates {
			if s.budget.MaxAttempts > 0 && s.attempts >= s.budget.MaxAttempts {
				return anyImprovement
			}

			trial := cloneBindings(s.current)
			trial[q.Name] = c.pick.Value
			s.attempts++

			if !runPredicate(s.pred, trial) {
				s.current = trial
				s.improved++
				anyImprovement = true
				accepted = true

				break
			}
		}

		if !accepted {
			return anyImprovement
		}
	}
}

// shrinkStep is Round-robin's single-attempt variant of shrinkOnce: it
// tries exactly one narrow-and-sample step for q rather than looping
// until no further progress, so each quantifier gets one turn per pass.
func (s *session) shrinkStep(q Quantifier) bool {
	if s.budget.MaxAttempts > 0 && s.attempts >= s.budget.MaxAttempts {
		return false
	}

	currentValue := s.current[q.Name]
	narrowed := q.Arb.Shrink(arbitrary.NewPick(currentValue))
	if arbitrary.IsNoArbitrary(narrowed) {
		return false
	}

	s.rngSeed++
	rng := arbitrary.NewRandRNG(s.rngSeed)

	type candidate struct {
		pick   arbitrary.Pick
		metric float64
	}

	n := s.budget.candidates()
	candidates := make([]candidate, 0, n)
	for i := 0; i < n; i++ {
		p, ok := narrowed.Pick(rng)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{pick: p, metric: structuralMetric(p.Value)})
	}
	if len(candidates) == 0 {
		return false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].metric < candidates[j].metric
	})

	for _, c := range candidates {
		if s.budget.MaxAttempts > 0 && s.attempts >= s.budget.MaxAttempts {
			return false
		}

		trial := cloneBindings(s.current)
		trial[q.Name] = c.pick.Value
		s.attempts++

		if !runPredicate(s.pred, trial) {
			s.current = trial
			s.improved++

			return true
		}
	}

	return false
}
