// SPDX-License-Identifier: MIT
package shrink

// DefaultCandidatesPerQuantifier is the number of narrowed-arbitrary
// samples tried per shrink step, per §4.6 ("sample N candidates (default
// 100)").
const DefaultCandidatesPerQuantifier = 100

// DefaultMaxRounds bounds how many full passes Sequential-exhaustive
// makes over the quantifier list.
const DefaultMaxRounds = 10

// Budget bounds one shrink session.
type Budget struct {
	// MaxAttempts caps the total number of candidate predicate
	// evaluations across the whole session.
	MaxAttempts int

	// MaxRounds caps the number of passes over all quantifiers.
	MaxRounds int

	// CandidatesPerQuantifier is how many narrowed samples are tried at
	// each shrink step. Defaults to DefaultCandidatesPerQuantifier when
	// <= 0.
	CandidatesPerQuantifier int
}

func (b Budget) candidates() int {
	if b.CandidatesPerQuantifier <= 0 {
		return DefaultCandidatesPerQuantifier
	}

	return b.CandidatesPerQuantifier
}

func (b Budget) rounds() int {
	if b.MaxRounds <= 0 {
		return DefaultMaxRounds
	}

	return b.MaxRounds
}
