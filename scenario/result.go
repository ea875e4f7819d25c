// SPDX-License-Identifier: MIT
package scenario

import (
	"fmt"

	"github.com/katalvlaran/lvlath/stats"
)

// CoverageResult is the materialized state of one coverage label, the
// §6 Result schema's `coverageResults[]` entry. It is a direct alias of
// stats.CoverageEntry: the aggregator already computes exactly the fields
// the schema names ({label, requiredPercentage, observedPercentage,
// count, satisfied, confidenceInterval}).
type CoverageResult = stats.CoverageEntry

// ShrinkingStats is the §6 Result schema's `shrinkingStats` object.
type ShrinkingStats struct {
	CandidatesTested int
	RoundsCompleted  int
	ImprovementsMade int
}

// FluentStatistics is the §3/§6 `statistics` object attached to every
// FluentResult. Fields beyond the first four are opt-in by strategy
// feature flags (WithStatistics/WithDetailedStatistics/WithShrinking/...).
type FluentStatistics struct {
	TestsRun         int
	TestsPassed      int
	TestsDiscarded   int
	ExecutionTimeMs  int64
	Confidence       *float64
	CredibleInterval *[2]float64
	Labels           map[string]int64
	LabelPercentages map[string]float64
	CoverageResults  []CoverageResult
	ArbitraryStats   map[string]*stats.ArbitraryStats
	ShrinkingStats   *ShrinkingStats
	// Collected holds Scenario.Collect(fn) projections; not part of the
	// literal §6 Result schema (which does not name a field for collect),
	// carried as a documented extension (see DESIGN.md).
	Collected map[string]*stats.Running
}

// FluentResult<Rec> (§3) is the outcome of one Check*/Scenario invocation.
// ExampleBindings holds the §3 `example` field's raw bindings; the
// Example() method (§7's named helper) renders them for humans.
type FluentResult struct {
	Satisfiable     bool
	ExampleBindings Bindings
	Seed            int64
	RunID           string
	Statistics      FluentStatistics
	message         string
}

// Example returns a human-readable rendering of the witness/counterexample
// bindings, or "<no example>" when none was captured — the explicit
// "Example()" helper named in §7 ("or from explicit assert* helpers on the
// Result").
func (r FluentResult) Example() string {
	if len(r.ExampleBindings) == 0 {
		return "<no example>"
	}

	return fmt.Sprintf("%v", map[string]interface{}(r.ExampleBindings))
}

// AssertSatisfiable returns nil when the run was satisfiable, or an error
// describing the captured counterexample/message otherwise (§7 "explicit
// assert* helpers").
func (r FluentResult) AssertSatisfiable() error {
	if r.Satisfiable {
		return nil
	}
	if r.message != "" {
		return fmt.Errorf("scenario: not satisfiable: %s (example=%s)", r.message, r.Example())
	}

	return fmt.Errorf("scenario: not satisfiable, example=%s", r.Example())
}

// AssertUnsatisfiable returns nil when the run found a falsifying/absent
// witness as expected, or an error naming the found example otherwise.
func (r FluentResult) AssertUnsatisfiable() error {
	if !r.Satisfiable {
		return nil
	}

	return fmt.Errorf("scenario: expected unsatisfiable, found example=%s", r.Example())
}
