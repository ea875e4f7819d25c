// SPDX-License-Identifier: MIT
package scenario

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlath/explorer"
	"github.com/katalvlaran/lvlath/internal/xlog"
	"github.com/katalvlaran/lvlath/sampler"
	"github.com/katalvlaran/lvlath/shrink"
	"github.com/katalvlaran/lvlath/stats"
)

// DefaultCoverageWilsonLevel is the two-sided confidence level used for
// CoverageResult.ConfidenceInterval when a Scenario registers Cover/
// CoverTable floors; not one of §6's strategy knobs, so fixed at the
// teacher-corpus-conventional 0.95 rather than exposed as an option.
const DefaultCoverageWilsonLevel = 0.95

// Check runs the scenario to a Fixed stopping rule (§6 check(opts?)): the
// run stops once testsRun reaches the (possibly overridden) sample size.
// A floor set via WithMinConfidence is not consulted; the Fixed rule
// alone decides when to stop.
func (s *Scenario) Check(opts ...StrategyOption) FluentResult {
	strategy := mergeStrategy(s.strategy, opts)

	budget := strategy.sampleSize
	if budget <= 0 || budget > strategy.maxIterations {
		budget = strategy.maxIterations
	}

	return s.run(strategy, explorer.Fixed(strategy.sampleSize), nil, budget)
}

// CheckWithConfidence runs the scenario under Bayesian confidence
// stopping at the given level (§6 checkWithConfidence(level, opts?)).
func (s *Scenario) CheckWithConfidence(level float64, opts ...StrategyOption) FluentResult {
	strategy := mergeStrategy(s.strategy, opts)
	strategy.confidence = level

	rule := explorer.Confidence(strategy.passRateThreshold, strategy.confidence, strategy.credibleIntervalWidth, strategy.maxIterations)

	return s.run(strategy, rule, nil, strategy.maxIterations)
}

// CheckCoverage runs the scenario until every registered Cover/CoverTable
// floor is proven satisfied or infeasible, capped by maxIterations (§6
// checkCoverage(opts?)).
func (s *Scenario) CheckCoverage(opts ...StrategyOption) FluentResult {
	strategy := mergeStrategy(s.strategy, opts)

	cov := stats.NewCoverage(DefaultCoverageWilsonLevel)
	for _, c := range s.covers {
		cov.Require(c.label, c.required)
	}

	rule := explorer.Coverage(cov, DefaultCoverageWilsonLevel, strategy.maxIterations)

	return s.run(strategy, rule, cov, strategy.maxIterations)
}

func mergeStrategy(base Strategy, opts []StrategyOption) Strategy {
	for _, opt := range opts {
		opt(&base)
	}

	return base
}

// run is the shared core behind Check/CheckWithConfidence/CheckCoverage:
// compile the scenario, wire an Explorer with the given stopping rule,
// execute it, shrink on failure, and materialize a FluentResult.
func (s *Scenario) run(strategy Strategy, rule explorer.StoppingRule, coverage *stats.Coverage, budgetMaxTests int) FluentResult {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	runID := uuid.New().String()
	started := time.Now()

	ex, err := s.compile()
	if err != nil {
		return FluentResult{Satisfiable: false, RunID: runID, Seed: strategy.seed, message: err.Error()}
	}

	if coverage == nil && len(s.covers) > 0 {
		coverage = stats.NewCoverage(DefaultCoverageWilsonLevel)
		for _, c := range s.covers {
			coverage.Require(c.label, c.required)
		}
	}

	var labels *stats.Labels
	if strategy.statistics {
		labels = stats.NewLabels()
	}

	arbStats := make(map[string]*stats.ArbitraryStats)

	quantifiers := make([]explorer.Quantifier, len(ex.quantifiers))
	for i, n := range ex.quantifiers {
		seed := strategy.seed + int64(i)
		rng := strategy.rngFactory(seed)

		var smp sampler.Sampler
		if strategy.bias {
			smp = sampler.Biased(n.Arb, sampler.WithRand(rng))
		} else {
			smp = sampler.Uniform(n.Arb, sampler.WithRand(rng))
		}

		if strategy.detailedStatistics {
			bundle := stats.NewArbitraryStats(n.Name)
			arbStats[n.Name] = bundle
			smp = newObservingSampler(smp, n.Arb, bundle)
		}

		kind := explorer.Forall
		if n.Kind == NodeExists {
			kind = explorer.Exists
		}

		quantifiers[i] = explorer.Quantifier{Name: n.Name, Kind: kind, Arb: n.Arb, Sampler: smp}
	}

	collected := make(map[string]*stats.Running, len(s.collectors))
	for _, c := range s.collectors {
		collected[c.name] = stats.NewRunning()
	}

	exp := &explorer.Explorer{
		Quantifiers: quantifiers,
		Predicate: func(b explorer.Bindings) (bool, error) {
			ok, evalErr := ex.eval(Bindings(b))
			if evalErr == nil && ok {
				for _, c := range s.collectors {
					collected[c.name].Add(c.fn(Bindings(b)))
				}
			}

			return ok, evalErr
		},
		Budget:   explorer.Budget{MaxTests: budgetMaxTests},
		Stopping: rule,
		Labels:   labels,
		Coverage: coverage,
	}

	if ex.precond != nil {
		exp.Precondition = func(b explorer.Bindings) bool { return ex.precond(Bindings(b)) }
	}
	if s.labelFn != nil || len(s.classifiers) > 0 {
		exp.Classify = func(b explorer.Bindings) string { return s.classify(Bindings(b)) }
	}
	if len(s.covers) > 0 {
		exp.Cover = func(b explorer.Bindings) []string { return s.coverLabels(Bindings(b)) }
	}

	result, err := exp.Run()
	if err != nil {
		return FluentResult{Satisfiable: false, RunID: runID, Seed: strategy.seed, message: err.Error()}
	}

	xlog.Get().Debug().
		Str("run_id", runID).
		Str("outcome", result.Outcome.String()).
		Int("tests_run", result.Snapshot.TestsRun).
		Msg("scenario run complete")

	fr := FluentResult{RunID: runID, Seed: strategy.seed}
	fr.Statistics = FluentStatistics{
		TestsRun:        result.Snapshot.TestsRun,
		TestsPassed:     result.Snapshot.TestsPassed,
		TestsDiscarded:  result.Snapshot.TestsDiscarded,
		ExecutionTimeMs: time.Since(started).Milliseconds(),
	}

	switch result.Outcome {
	case explorer.Passed:
		fr.Satisfiable = true
		fr.ExampleBindings = Bindings(result.Witness)
	case explorer.Failed:
		fr.Satisfiable = false
		fr.ExampleBindings = Bindings(result.Counterexample)
		fr.message = "predicate falsified"

		if strategy.shrinking {
			fr.ExampleBindings, fr.Statistics.ShrinkingStats = s.shrink(ex, strategy, result.Counterexample)
		}
	default: // Exhausted
		if result.Snapshot.TestsRun == 0 && result.Snapshot.TestsDiscarded > 0 {
			// Filter/precondition exhaustion prevented any real test from
			// running — §8 S6's "passed vacuously" reading.
			fr.Satisfiable = true
		} else {
			fr.Satisfiable = false
			fr.message = "no witness found within budget"
		}
	}

	if coverage != nil {
		if entries, covErr := coverage.Results(); covErr == nil {
			if strategy.statistics {
				fr.Statistics.CoverageResults = entries
			}
			for _, e := range entries {
				if !e.Satisfied && e.ConfidenceUpperBound < e.RequiredPercentage {
					fr.Satisfiable = false
					fr.message = "coverage floor infeasible for " + e.Label
				}
			}
		}
	}

	if strategy.statistics {
		if labels != nil {
			counts := make(map[string]int64, len(labels.Names()))
			for _, name := range labels.Names() {
				counts[name] = labels.Count(name)
			}
			fr.Statistics.Labels = counts
			fr.Statistics.LabelPercentages = labels.Percentages()
		}
		if len(arbStats) > 0 {
			fr.Statistics.ArbitraryStats = arbStats
		}
		if len(collected) > 0 {
			fr.Statistics.Collected = collected
		}
	}

	if level, lo, hi, ok := rule.Confidence(); ok {
		fr.Statistics.Confidence = &level
		fr.Statistics.CredibleInterval = &[2]float64{lo, hi}
	}

	return fr
}

// classify evaluates Label/Classify registrations for one passing tuple,
// returning the winning label or "" for none (§6 classify/label).
func (s *Scenario) classify(b Bindings) string {
	if s.labelFn != nil {
		return s.labelFn(b)
	}
	for _, c := range s.classifiers {
		if c.pred(b) {
			return c.label
		}
	}

	return ""
}

// coverLabels evaluates every Cover/CoverTable registration for one
// passing tuple, returning every label whose predicate matched (§6 cover/
// coverTable; an Explorer CoverFn may return multiple labels per test).
func (s *Scenario) coverLabels(b Bindings) []string {
	var out []string
	for _, c := range s.covers {
		if c.predicate(b) {
			out = append(out, c.label)
		}
	}

	return out
}

// shrink narrows counterexample using strategy's configured shrink
// strategy, returning the narrowed bindings and a ShrinkingStats summary
// (§4.6, §6 shrinkingStats schema field).
func (s *Scenario) shrink(ex *ExecutableScenario, strategy Strategy, counterexample explorer.Bindings) (Bindings, *ShrinkingStats) {
	quantifiers := make([]shrink.Quantifier, len(ex.quantifiers))
	for i, n := range ex.quantifiers {
		quantifiers[i] = shrink.Quantifier{Name: n.Name, Arb: n.Arb}
	}

	pred := func(b shrink.Bindings) (bool, error) { return ex.eval(Bindings(b)) }

	var strat shrink.Strategy
	if strategy.shrinkStrategy == RoundRobin {
		strat = shrink.RoundRobin()
	} else {
		strat = shrink.SequentialExhaustive()
	}

	narrowed, shrinkStats := strat.Shrink(quantifiers, shrink.Bindings(counterexample), pred, shrink.Budget{MaxAttempts: strategy.shrinkAttempts})

	return Bindings(narrowed), &ShrinkingStats{
		CandidatesTested: shrinkStats.Attempts,
		RoundsCompleted:  shrinkStats.Rounds,
		ImprovementsMade: shrinkStats.Improvements,
	}
}
