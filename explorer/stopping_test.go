package explorer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlath/explorer"
	"github.com/katalvlaran/lvlath/stats"
)

func TestFixed_StopsAtSampleSize(t *testing.T) {
	r := explorer.Fixed(10)
	d := r.Evaluate(explorer.Snapshot{TestsRun: 9})
	assert.False(t, d.Stop)
	d = r.Evaluate(explorer.Snapshot{TestsRun: 10})
	assert.True(t, d.Stop)
}

func TestConfidence_ReachesTargetAfterManyPasses(t *testing.T) {
	r := explorer.Confidence(0.5, 0.99, 0.90, 10000)
	type observer interface{ Observe(bool) }
	obs := r.(observer)

	var d explorer.StopDecision
	for i := 0; i < 200; i++ {
		obs.Observe(true)
		d = r.Evaluate(explorer.Snapshot{TestsRun: i + 1})
		if d.Stop {
			break
		}
	}
	assert.True(t, d.Stop)

	confidence, lo, hi, ok := r.Confidence()
	assert.True(t, ok)
	assert.GreaterOrEqual(t, confidence, 0.99)
	assert.LessOrEqual(t, lo, hi)
}

func TestConfidence_StopsAtMaxTestsEvenWithoutConfidence(t *testing.T) {
	r := explorer.Confidence(0.99, 0.9999999, 0.90, 5)
	d := r.Evaluate(explorer.Snapshot{TestsRun: 5})
	assert.True(t, d.Stop)
}

func TestCoverage_StopsWhenAllFloorsSatisfied(t *testing.T) {
	cov := stats.NewCoverage(0.95)
	cov.Require("small", 10)

	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			cov.Observe("small")
		} else {
			cov.Observe("")
		}
	}

	r := explorer.Coverage(cov, 0.95, 10000)
	d := r.Evaluate(explorer.Snapshot{TestsRun: 1000})
	assert.True(t, d.Stop)
}

func TestCoverage_StopsAtMaxTestsRegardless(t *testing.T) {
	cov := stats.NewCoverage(0.95)
	cov.Require("rare", 99)

	r := explorer.Coverage(cov, 0.95, 5)
	d := r.Evaluate(explorer.Snapshot{TestsRun: 5})
	assert.True(t, d.Stop)
}
