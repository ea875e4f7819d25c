// SPDX-License-Identifier: MIT
package stats

import "math"

// Running accumulates count, mean and variance incrementally via Welford's
// algorithm, plus running min/max. Construct it with NewRunning: a zero
// Running starts Min and Max at 0 rather than +Inf/-Inf.
type Running struct {
	count int64
	mean  float64
	m2    float64 // sum of squared deviations from the running mean
	min   float64
	max   float64
}

// NewRunning returns an empty accumulator.
func NewRunning() *Running {
	return &Running{min: math.Inf(1), max: math.Inf(-1)}
}

// Add folds a new observation in. Time O(1), space O(1).
func (r *Running) Add(x float64) {
	r.count++
	delta := x - r.mean
	r.mean += delta / float64(r.count)
	delta2 := x - r.mean
	r.m2 += delta * delta2

	if x < r.min {
		r.min = x
	}
	if x > r.max {
		r.max = x
	}
}

// Count returns the number of observations folded in so far.
func (r *Running) Count() int64 { return r.count }

// Mean returns the running mean, or 0 if no samples were observed.
func (r *Running) Mean() float64 { return r.mean }

// Variance returns the sample variance (Bessel-corrected), or 0 for
// fewer than two observations.
func (r *Running) Variance() float64 {
	if r.count < 2 {
		return 0
	}

	return r.m2 / float64(r.count-1)
}

// StdDev returns the sample standard deviation.
func (r *Running) StdDev() float64 { return math.Sqrt(r.Variance()) }

// Min returns the smallest observed value, or +Inf if empty.
func (r *Running) Min() float64 { return r.min }

// Max returns the largest observed value, or -Inf if empty.
func (r *Running) Max() float64 { return r.max }
