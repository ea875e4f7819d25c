// Package fluentcheck (lvlath) is a property-based testing engine: an
// arbitrary/generator algebra with Bayesian size estimation, a
// stopping-rule-driven explorer, and a pluggable shrinker, wired together
// by the scenario package into a fluent check/checkWithConfidence/
// checkCoverage surface.
//
// Subpackages:
//
//	beta/      — Beta(α,β) posterior tracking for size/confidence estimation
//	arbitrary/ — the generator algebra: Integer/Real/Boolean/Array/Set/
//	             Tuple/Record/Union/Mapped/Filtered/Chained/Unique/Graph/Path
//	sampler/   — Uniform/Biased/Deduping/Cached draw strategies
//	stats/     — Welford running stats, quantile reservoir, HyperLogLog
//	             sketch, Wilson intervals, label/coverage counters
//	explorer/  — the nested-loop walk, budget accounting, stopping rules
//	shrink/    — sequential-exhaustive and round-robin counterexample
//	             shrinking
//	scenario/  — Scenario builder, Strategy config, and the Check*/Result
//	             surface that ties the above into one run
//	core/      — the Graph/Vertex/Edge primitives arbitrary.Graph/Path
//	             build on
//	builder/   — the random sparse (Erdős–Rényi) graph constructor used by
//	             arbitrary.Graph
//	bfs/       — breadth-first search used by arbitrary.Path
package fluentcheck
