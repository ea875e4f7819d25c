package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/stats"
)

func TestQuantile_MedianOfSortedRange(t *testing.T) {
	q := stats.NewQuantile(1000)
	for i := 1; i <= 100; i++ {
		q.Add(float64(i))
	}

	med, err := q.Median()
	require.NoError(t, err)
	assert.InDelta(t, 50, med, 5)
}

func TestQuantile_EmptyReturnsError(t *testing.T) {
	q := stats.NewQuantile(10)
	_, err := q.At(0.5)
	assert.ErrorIs(t, err, stats.ErrEmptySample)
}

func TestQuantile_ReservoirCapsAtCapacity(t *testing.T) {
	q := stats.NewQuantile(50)
	for i := 0; i < 10000; i++ {
		q.Add(float64(i))
	}

	assert.Equal(t, 50, q.Len())
	assert.Equal(t, int64(10000), q.Seen())
}

func TestHistogram_BinsSpanMinMax(t *testing.T) {
	q := stats.NewQuantile(1000)
	for i := 0; i < 100; i++ {
		q.Add(float64(i))
	}

	h, err := q.Histogram(10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, h.Min)
	assert.Equal(t, 99.0, h.Max)
	assert.Len(t, h.Counts, 10)

	var total int64
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, int64(100), total)
}
