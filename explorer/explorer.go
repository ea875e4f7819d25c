// SPDX-License-Identifier: MIT
package explorer

import (
	"time"

	"github.com/katalvlaran/lvlath/arbitrary"
	"github.com/katalvlaran/lvlath/stats"
)

// Bindings maps quantifier names to their currently bound values.
type Bindings map[string]arbitrary.Value

// Predicate evaluates a fully-bound tuple. A Go error from pred is folded
// into a failed test rather than propagated, matching §1's "does not
// provide a stable error taxonomy for user predicate exceptions beyond
// surfacing them as test failures".
type Predicate func(Bindings) (bool, error)

// Precondition reports whether a fully-bound tuple should be evaluated at
// all; false discards the test (§4.4 "Preconditions").
type Precondition func(Bindings) bool

// ClassifyFn derives a label for a satisfied test, or "" for no label.
type ClassifyFn func(Bindings) string

// CoverFn derives zero or more coverage labels a satisfied test counts
// toward.
type CoverFn func(Bindings) []string

// Explorer runs a Predicate across a nested set of Quantifiers under a
// Budget and a pluggable StoppingRule, per §4.4.
type Explorer struct {
	Quantifiers  []Quantifier
	Predicate    Predicate
	Precondition Precondition
	Classify     ClassifyFn
	Cover        CoverFn
	Budget       Budget
	Stopping     StoppingRule
	Labels       *stats.Labels
	Coverage     *stats.Coverage

	testsRun       int
	testsPassed    int
	testsFailed    int
	testsDiscarded int
	stopped        bool
	startedAt      time.Time

	counterexample Bindings
	witness        Bindings
}

// Result is the outcome of one Explorer.Run call.
type Result struct {
	Outcome        Outcome
	Counterexample Bindings
	Witness        Bindings
	Snapshot       Snapshot
}

type levelOutcome struct {
	Satisfied bool
	Discarded bool
}

// Run executes the nested-loop walk described in §4.4 and returns the
// aggregate Result.
func (e *Explorer) Run() (Result, error) {
	if len(e.Quantifiers) == 0 {
		return Result{}, ErrNoQuantifiers
	}
	if e.Predicate == nil {
		return Result{}, ErrPredicateNil
	}

	e.startedAt = time.Now()

	picks := make([][]arbitrary.Pick, len(e.Quantifiers))
	for i, q := range e.Quantifiers {
		n := e.Budget.MaxTests
		if n <= 0 {
			n = DefaultConfidenceCheckInterval
		}
		drawn, err := q.Sampler.Sample(n)
		if err != nil {
			return Result{}, err
		}
		picks[i] = drawn
		if q.Kind == Forall && len(drawn) < n {
			// Draws the arbitrary could not produce (e.g. an exhausted
			// filter) count as discarded tests.
			e.testsDiscarded += n - len(drawn)
		}
	}

	outcome := e.runLevel(0, picks, Bindings{})

	snap := Snapshot{
		TestsRun:       e.testsRun,
		TestsPassed:    e.testsPassed,
		TestsFailed:    e.testsFailed,
		TestsDiscarded: e.testsDiscarded,
	}

	result := Result{Snapshot: snap}

	switch {
	case outcome.Discarded:
		result.Outcome = Exhausted
	case outcome.Satisfied:
		result.Outcome = Passed
		result.Witness = e.witness
	default:
		if e.Quantifiers[0].Kind == Forall {
			result.Outcome = Failed
			result.Counterexample = e.counterexample
		} else {
			result.Outcome = Exhausted
		}
	}

	return result, nil
}

func (e *Explorer) runLevel(level int, picks [][]arbitrary.Pick, bindings Bindings) levelOutcome {
	if level == len(e.Quantifiers) {
		return e.evalLeaf(bindings)
	}

	q := e.Quantifiers[level]
	anyNonDiscarded := false

	for _, p := range picks[level] {
		if e.stopped {
			break
		}

		bindings[q.Name] = p.Value
		lo := e.runLevel(level+1, picks, bindings)

		if lo.Discarded {
			continue
		}
		anyNonDiscarded = true

		switch q.Kind {
		case Forall:
			if !lo.Satisfied {
				if e.counterexample == nil {
					e.counterexample = cloneBindings(bindings)
				}

				return levelOutcome{Satisfied: false}
			}
		case Exists:
			if lo.Satisfied {
				if e.witness == nil {
					e.witness = cloneBindings(bindings)
				}

				return levelOutcome{Satisfied: true}
			}
		}
	}

	if !anyNonDiscarded {
		return levelOutcome{Satisfied: true, Discarded: true}
	}

	// Forall: every sample satisfied. Exists: no witness found (falsified).
	return levelOutcome{Satisfied: q.Kind == Forall}
}

func (e *Explorer) evalLeaf(bindings Bindings) levelOutcome {
	if e.Precondition != nil && !e.Precondition(bindings) {
		e.testsDiscarded++

		return levelOutcome{Discarded: true}
	}

	e.testsRun++
	satisfied, err := e.Predicate(bindings)
	if err != nil {
		satisfied = false
	}

	if satisfied {
		e.testsPassed++
		if e.Classify != nil {
			if label := e.Classify(bindings); label != "" && e.Labels != nil {
				e.Labels.Observe(label)
			}
		}
		if e.Cover != nil && e.Coverage != nil {
			for _, label := range e.Cover(bindings) {
				e.Coverage.Observe(label)
			}
		}
	} else {
		e.testsFailed++
	}

	if obs, ok := e.Stopping.(confidenceObserver); ok {
		obs.Observe(satisfied)
	}

	e.checkStop()

	return levelOutcome{Satisfied: satisfied}
}

func (e *Explorer) checkStop() {
	if e.stopped {
		return
	}
	if e.Budget.MaxTime > 0 && time.Since(e.startedAt) >= e.Budget.MaxTime {
		e.stopped = true

		return
	}
	if e.testsRun%e.Budget.checkInterval() != 0 {
		return
	}
	if e.Stopping == nil {
		return
	}

	decision := e.Stopping.Evaluate(Snapshot{
		TestsRun:       e.testsRun,
		TestsPassed:    e.testsPassed,
		TestsFailed:    e.testsFailed,
		TestsDiscarded: e.testsDiscarded,
	})
	if decision.Stop {
		e.stopped = true
	}
}

func cloneBindings(b Bindings) Bindings {
	out := make(Bindings, len(b))
	for k, v := range b {
		out[k] = v
	}

	return out
}
