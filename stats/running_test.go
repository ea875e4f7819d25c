package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlath/stats"
)

func TestRunning_MeanAndVariance(t *testing.T) {
	r := stats.NewRunning()
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		r.Add(v)
	}

	assert.InDelta(t, 5.0, r.Mean(), 1e-9)
	assert.InDelta(t, 4.5714285714, r.Variance(), 1e-6)
	assert.Equal(t, int64(8), r.Count())
}

func TestRunning_MinMax(t *testing.T) {
	r := stats.NewRunning()
	r.Add(3)
	r.Add(-5)
	r.Add(10)

	assert.Equal(t, -5.0, r.Min())
	assert.Equal(t, 10.0, r.Max())
}

func TestRunning_EmptyIsZero(t *testing.T) {
	r := stats.NewRunning()
	assert.Equal(t, 0.0, r.Mean())
	assert.Equal(t, 0.0, r.Variance())
}
