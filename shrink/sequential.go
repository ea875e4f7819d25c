// SPDX-License-Identifier: MIT
package shrink

// sequentialExhaustive fixes all but one quantifier to their current
// counterexample value and repeatedly tries to shrink it as far as
// possible before moving to the next, repeating the whole pass up to
// rounds times, per §4.6 "Sequential-exhaustive".
type sequentialExhaustive struct{}

// SequentialExhaustive returns the Sequential-exhaustive Strategy.
func SequentialExhaustive() Strategy {
	return sequentialExhaustive{}
}

func (sequentialExhaustive) Shrink(quantifiers []Quantifier, counterexample Bindings, pred Predicate, budget Budget) (Bindings, Stats) {
	s := &session{quantifiers: quantifiers, pred: pred, budget: budget, current: cloneBindings(counterexample)}

	rounds := 0
	for ; rounds < budget.rounds(); rounds++ {
		progressedThisRound := false

		for _, q := range quantifiers {
			if budget.MaxAttempts > 0 && s.attempts >= budget.MaxAttempts {
				break
			}
			if s.shrinkOnce(q) {
				progressedThisRound = true
			}
		}

		if !progressedThisRound {
			rounds++

			break
		}
	}

	return s.current, Stats{Rounds: rounds, Attempts: s.attempts, Improvements: s.improved}
}
