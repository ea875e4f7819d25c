// SPDX-License-Identifier: MIT
package stats

import "sort"

// Labels is a hash-map label counter incremented per classified test, per
// §4.5 ("Label counter: hash-map keyed by string, incremented per
// classified test").
type Labels struct {
	counts map[string]int64
	total  int64
}

// NewLabels returns an empty label counter.
func NewLabels() *Labels {
	return &Labels{counts: make(map[string]int64)}
}

// Observe increments label's count and the overall total.
func (l *Labels) Observe(label string) {
	l.counts[label]++
	l.total++
}

// Count returns how many times label was observed.
func (l *Labels) Count(label string) int64 { return l.counts[label] }

// Total returns the number of observations across all labels.
func (l *Labels) Total() int64 { return l.total }

// Percentages returns each observed label's share of Total as a
// percentage (0..100), in a map keyed by label name.
func (l *Labels) Percentages() map[string]float64 {
	out := make(map[string]float64, len(l.counts))
	if l.total == 0 {
		return out
	}
	for label, n := range l.counts {
		out[label] = float64(n) / float64(l.total) * 100
	}

	return out
}

// Names returns the observed label names in sorted order.
func (l *Labels) Names() []string {
	names := make([]string, 0, len(l.counts))
	for label := range l.counts {
		names = append(names, label)
	}
	sort.Strings(names)

	return names
}

// CoverageEntry is the materialized state of one tracked coverage label.
type CoverageEntry struct {
	Label                string
	RequiredPercentage   float64
	ObservedPercentage   float64
	Count                int64
	Satisfied            bool
	ConfidenceLowerBound float64
	ConfidenceUpperBound float64
}

// Coverage is a parallel table to Labels tracking a required-percentage
// target per label, per §4.5 ("Coverage counter: parallel table with
// Wilson interval on demand").
type Coverage struct {
	labels      *Labels
	required    map[string]float64
	totalTests  int64
	wilsonLevel float64
}

// NewCoverage returns a coverage tracker reporting Wilson intervals at the
// given confidence level (e.g. 0.95).
func NewCoverage(level float64) *Coverage {
	return &Coverage{labels: NewLabels(), required: make(map[string]float64), wilsonLevel: level}
}

// Require registers a minimum coverage percentage for label.
func (c *Coverage) Require(label string, percentage float64) {
	c.required[label] = percentage
}

// Observe records one classified test, incrementing label's count (if
// classified) and the shared test total.
func (c *Coverage) Observe(label string) {
	if label != "" {
		c.labels.Observe(label)
	}
	c.totalTests++
}

// Results materializes a CoverageEntry for every label registered via
// Require, computing observed percentage and a two-sided Wilson interval
// against totalTests.
func (c *Coverage) Results() ([]CoverageEntry, error) {
	labels := make([]string, 0, len(c.required))
	for label := range c.required {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make([]CoverageEntry, 0, len(labels))
	for _, label := range labels {
		count := c.labels.Count(label)
		observed := 0.0
		if c.totalTests > 0 {
			observed = float64(count) / float64(c.totalTests) * 100
		}

		lo, hi, err := WilsonInterval(count, c.totalTests, c.wilsonLevel)
		if err != nil {
			return nil, err
		}

		required := c.required[label]
		out = append(out, CoverageEntry{
			Label:                label,
			RequiredPercentage:   required,
			ObservedPercentage:   observed,
			Count:                count,
			Satisfied:            observed >= required,
			ConfidenceLowerBound: lo * 100,
			ConfidenceUpperBound: hi * 100,
		})
	}

	return out, nil
}
