// SPDX-License-Identifier: MIT
// Package stats provides the streaming accumulators the explorer and
// scenario runner use to build FluentStatistics without retaining every
// observed sample in memory: a numerically stable running mean/variance
// (Welford), running min/max, a bounded reservoir for on-demand quantiles
// and histograms, label/coverage counters with Wilson score intervals, and
// a HyperLogLog-style cardinality sketch for Unique arbitraries.
//
// AI-Hints:
//   - All accumulators are safe to use from a single goroutine only, matching
//     the single-threaded-per-run concurrency model the rest of the module
//     assumes; wrap with a mutex if sharing across scenario runs.
//   - Quantile/Histogram are O(1) to update and O(n log n) on demand (both
//     sort the buffer); call them only when materializing a Result.
package stats
