// SPDX-License-Identifier: MIT
package stats

// ArbitraryStats is the opt-in per-arbitrary accumulator bundle named in
// §4.5: sample count, unique-count estimator, corner cases hit, and the
// numeric/length distribution structures, shared across numeric arbitraries
// (raw value) and container/string arbitraries (length of value).
type ArbitraryStats struct {
	Name          string
	SampleCount   int64
	CornerCasesHit int64
	Distribution  *Running
	Quantiles     *Quantile
	Sketch        *Sketch
}

// NewArbitraryStats returns an empty bundle for the named arbitrary.
func NewArbitraryStats(name string) *ArbitraryStats {
	return &ArbitraryStats{
		Name:         name,
		Distribution: NewRunning(),
		Quantiles:    NewQuantile(DefaultReservoirSize),
		Sketch:       NewSketch(),
	}
}

// Observe folds one sample's numeric/length projection and hash into the
// bundle. isCornerCase marks samples drawn from CornerCases() rather than
// Pick(), per §4.5's "corner cases hit" counter.
func (s *ArbitraryStats) Observe(metric float64, hash uint64, isCornerCase bool) {
	s.SampleCount++
	s.Distribution.Add(metric)
	s.Quantiles.Add(metric)
	s.Sketch.Add(hash)
	if isCornerCase {
		s.CornerCasesHit++
	}
}
