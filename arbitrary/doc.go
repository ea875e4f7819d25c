// Package arbitrary implements the composable value-generator algebra at
// the core of fluentcheck: leaves (Integer, Real, Constant, Boolean),
// containers (Array, Set, Tuple, Record), combinators (Union, Mapped,
// Filtered, Chained, Unique) and derived generators (String, Regex,
// Graph, Path).
//
// # Design
//
// Every Arbitrary operates on untyped values (Value = interface{}) rather
// than a generic type parameter. This follows the Design Notes'
// resolution for "dynamic type erasure of heterogeneous quantifier
// records": a scenario's quantifiers are not statically homogeneous, so
// the algebra itself is erased, and the caller (scenario package) is
// responsible for asserting concrete types out of a Pick.Value when it
// knows the generator. This mirrors how lvlath/core keeps Vertex/Edge as
// concrete structs but lets Metadata carry arbitrary user payloads.
//
// # Ownership & ai state
//
// An Arbitrary owns its children outright (value semantics, no shared
// mutable state) with exactly one exception: Filtered owns a *beta.Posterior.
// Constructing two Filtered arbitraries from the same base and predicate
// gives each its own posterior; sharing one Filtered value across two
// quantifier positions shares that posterior and correlates their
// acceptance-rate estimates (§4.2, §8) — callers that need independent
// estimates must construct two Filtered values.
//
// AI-Hints:
//   - Use NoArbitrary() as the canonical zero-size arbitrary: Union treats
//     it as identity, Tuple/Array/Record treat it as absorbing (§4.2).
//   - Filtered.Reset() clears posterior + warm-up state; useful when a
//     caller wants to reuse a Filtered value's predicate across runs
//     without carrying over a prior run's acceptance-rate belief.
//   - CornerCases() is always finite and never triggers Pick's RNG; the
//     sampler package consumes it directly (biased sampling, §4.3).
package arbitrary
