// SPDX-License-Identifier: MIT
package explorer

import (
	"github.com/katalvlaran/lvlath/beta"
	"github.com/katalvlaran/lvlath/stats"
)

// Snapshot is the state a StoppingRule evaluates at each check boundary.
type Snapshot struct {
	TestsRun       int
	TestsPassed    int
	TestsFailed    int
	TestsDiscarded int
}

// StopDecision reports whether a run should stop, and if so why.
type StopDecision struct {
	Stop   bool
	Reason string
}

// StoppingRule decides, from a Snapshot, whether an Explorer run should
// continue drawing samples.
type StoppingRule interface {
	Evaluate(snap Snapshot) StopDecision

	// Confidence reports the rule's current confidence level, if
	// meaningful (Confidence rule only); ok is false otherwise.
	Confidence() (level float64, credibleLo, credibleHi float64, ok bool)
}

// confidenceObserver is implemented by StoppingRule variants that fold
// per-test outcomes into their own posterior (Confidence only); Explorer
// type-asserts to it rather than widening the StoppingRule interface for
// Fixed/Coverage rules that have no analogous update.
type confidenceObserver interface {
	Observe(passed bool)
}

// fixedRule stops once testsRun reaches sampleSize, per §4.4 "Fixed".
type fixedRule struct {
	sampleSize int
}

// Fixed returns a StoppingRule that stops once sampleSize tests have run.
func Fixed(sampleSize int) StoppingRule {
	return fixedRule{sampleSize: sampleSize}
}

func (r fixedRule) Evaluate(snap Snapshot) StopDecision {
	if snap.TestsRun >= r.sampleSize {
		return StopDecision{Stop: true, Reason: "reached fixed sample size"}
	}

	return StopDecision{}
}

func (r fixedRule) Confidence() (float64, float64, float64, bool) { return 0, 0, 0, false }

// confidenceRule maintains Beta(1+testsPassed, 1+testsFailed) over the
// predicate's true pass rate and stops once the posterior probability
// that the true rate exceeds passRateThreshold reaches targetConfidence,
// per §4.4 "Confidence".
type confidenceRule struct {
	passRateThreshold float64
	targetConfidence  float64
	credibleLevel     float64
	maxTests          int
	posterior         *beta.Posterior
}

// Confidence returns a StoppingRule implementing Bayesian confidence
// stopping: stop when confidence = 1-CDF(passRateThreshold) >=
// targetConfidence, or when maxTests tests have run.
func Confidence(passRateThreshold, targetConfidence, credibleLevel float64, maxTests int) StoppingRule {
	p, err := beta.New(1, 1)
	if err != nil {
		p = &beta.Posterior{Alpha: 1, Beta: 1}
	}

	return &confidenceRule{
		passRateThreshold: passRateThreshold,
		targetConfidence:  targetConfidence,
		credibleLevel:     credibleLevel,
		maxTests:          maxTests,
		posterior:         p,
	}
}

// Observe folds one non-discarded test outcome into the confidence
// posterior. The Explorer calls this once per Forall/Exists sample; it is
// exported on the concrete type rather than the interface since Fixed and
// Coverage rules have no analogous per-sample update.
func (r *confidenceRule) Observe(passed bool) {
	r.posterior.Update(passed)
}

func (r *confidenceRule) Evaluate(snap Snapshot) StopDecision {
	if snap.TestsRun >= r.maxTests {
		return StopDecision{Stop: true, Reason: "reached max tests"}
	}

	confidence := 1 - r.posterior.CDF(r.passRateThreshold)
	if confidence >= r.targetConfidence {
		return StopDecision{Stop: true, Reason: "reached target confidence"}
	}

	return StopDecision{}
}

func (r *confidenceRule) Confidence() (float64, float64, float64, bool) {
	confidence := 1 - r.posterior.CDF(r.passRateThreshold)
	lo, hi, err := r.posterior.CredibleInterval(r.credibleLevel)
	if err != nil {
		return confidence, 0, 0, true
	}

	return confidence, lo, hi, true
}

// coverageRule runs until every required label's lower Wilson bound
// exceeds its floor (success) or its upper bound falls below its floor
// (proven infeasible), capped by maxTests, per §4.4 "Coverage".
type coverageRule struct {
	coverage    *stats.Coverage
	maxTests    int
	wilsonLevel float64
}

// Coverage returns a StoppingRule that consults cov (already populated
// with Require calls) at each check boundary.
func Coverage(cov *stats.Coverage, wilsonLevel float64, maxTests int) StoppingRule {
	return coverageRule{coverage: cov, wilsonLevel: wilsonLevel, maxTests: maxTests}
}

func (r coverageRule) Evaluate(snap Snapshot) StopDecision {
	if snap.TestsRun >= r.maxTests {
		return StopDecision{Stop: true, Reason: "reached max tests"}
	}

	results, err := r.coverage.Results()
	if err != nil || len(results) == 0 {
		return StopDecision{}
	}

	allSatisfied := true
	for _, entry := range results {
		lo := entry.ConfidenceLowerBound / 100
		hi := entry.ConfidenceUpperBound / 100
		floor := entry.RequiredPercentage / 100

		if hi < floor {
			return StopDecision{Stop: true, Reason: "coverage floor proven infeasible for " + entry.Label}
		}
		if lo <= floor {
			allSatisfied = false
		}
	}

	if allSatisfied {
		return StopDecision{Stop: true, Reason: "all coverage floors satisfied"}
	}

	return StopDecision{}
}

func (r coverageRule) Confidence() (float64, float64, float64, bool) { return 0, 0, 0, false }
