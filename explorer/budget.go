// SPDX-License-Identifier: MIT
package explorer

import "time"

// DefaultConfidenceCheckInterval is how often (in tests run) the stopping
// condition is evaluated, per §4.4 ("Check the stopping condition every
// confidenceCheckInterval tests") and §5 ("the only guaranteed yield
// point").
const DefaultConfidenceCheckInterval = 100

// Budget bounds one Explorer run.
type Budget struct {
	// MaxTests is how many candidates each quantifier's Sampler is asked
	// for up front (DefaultConfidenceCheckInterval when <= 0). With one
	// quantifier it bounds the tests run; with nested quantifiers the walk
	// can evaluate up to the product of the pool sizes, since the Explorer
	// does not itself stop on a test count. The Confidence and Coverage
	// rules apply their own maxTests at check boundaries.
	MaxTests int

	// MaxTime, if non-zero, bounds wall-clock run time; it is consulted
	// after every evaluated test, not only at check boundaries (§5
	// "Timeouts").
	MaxTime time.Duration

	// ConfidenceCheckInterval is how many tests elapse between stopping
	// condition evaluations. Defaults to DefaultConfidenceCheckInterval
	// when <= 0.
	ConfidenceCheckInterval int
}

func (b Budget) checkInterval() int {
	if b.ConfidenceCheckInterval <= 0 {
		return DefaultConfidenceCheckInterval
	}

	return b.ConfidenceCheckInterval
}
