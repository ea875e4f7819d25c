// SPDX-License-Identifier: MIT
package stats

import (
	"math/rand"
	"sort"
)

// DefaultReservoirSize is the default capacity of a Quantile buffer, per
// §4.5 ("reservoir-style buffer (default 10,000 samples)").
const DefaultReservoirSize = 10000

// DefaultHistogramBins is the default bin count a Histogram derives from
// a Quantile buffer's observed min/max.
const DefaultHistogramBins = 10

// Quantile is a reservoir-sampling buffer: once full, each new observation
// replaces a uniformly random existing slot with decreasing probability, so
// the buffer remains a representative sample of an unbounded stream without
// retaining every value.
type Quantile struct {
	capacity int
	seen     int64
	buf      []float64
	rng      *rand.Rand
}

// NewQuantile returns a reservoir of the given capacity. capacity<=0 falls
// back to DefaultReservoirSize.
func NewQuantile(capacity int) *Quantile {
	if capacity <= 0 {
		capacity = DefaultReservoirSize
	}

	return &Quantile{capacity: capacity, rng: rand.New(rand.NewSource(1))}
}

// Add folds a new observation into the reservoir.
func (q *Quantile) Add(x float64) {
	q.seen++
	if len(q.buf) < q.capacity {
		q.buf = append(q.buf, x)

		return
	}

	j := q.rng.Int63n(q.seen)
	if j < int64(q.capacity) {
		q.buf[j] = x
	}
}

// Len returns the number of samples currently held (capped at capacity).
func (q *Quantile) Len() int { return len(q.buf) }

// Seen returns the total number of observations folded in, including ones
// dropped by reservoir replacement.
func (q *Quantile) Seen() int64 { return q.seen }

// sorted returns a freshly sorted copy of the buffer.
func (q *Quantile) sorted() []float64 {
	out := make([]float64, len(q.buf))
	copy(out, q.buf)
	sort.Float64s(out)

	return out
}

// At returns the value at the given quantile (0..1): the element at index
// floor(p*(n-1)) of the sorted buffer. Returns ErrEmptySample if no samples were added.
func (q *Quantile) At(p float64) (float64, error) {
	if len(q.buf) == 0 {
		return 0, ErrEmptySample
	}

	sorted := q.sorted()
	if p <= 0 {
		return sorted[0], nil
	}
	if p >= 1 {
		return sorted[len(sorted)-1], nil
	}

	idx := int(p * float64(len(sorted)-1))

	return sorted[idx], nil
}

// Median returns the 0.5 quantile.
func (q *Quantile) Median() (float64, error) { return q.At(0.5) }

// Histogram buckets the reservoir's current contents into bins fixed-width
// bins spanning [min,max], derived fresh on every call.
type Histogram struct {
	Min     float64
	Max     float64
	Counts  []int64
	BinSize float64
}

// Histogram derives a fixed-bin histogram from the reservoir's current
// contents. bins<=0 falls back to DefaultHistogramBins.
func (q *Quantile) Histogram(bins int) (Histogram, error) {
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	if len(q.buf) == 0 {
		return Histogram{}, ErrEmptySample
	}

	sorted := q.sorted()
	min, max := sorted[0], sorted[len(sorted)-1]
	counts := make([]int64, bins)

	span := max - min
	if span == 0 {
		counts[0] = int64(len(sorted))

		return Histogram{Min: min, Max: max, Counts: counts, BinSize: 0}, nil
	}

	binSize := span / float64(bins)
	for _, v := range sorted {
		idx := int((v - min) / binSize)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	return Histogram{Min: min, Max: max, Counts: counts, BinSize: binSize}, nil
}
