// SPDX-License-Identifier: MIT
// Package explorer implements the nested-loop walk over a scenario's
// quantifiers described in §4.4: for each tuple of outer bindings, the
// innermost quantifier is iterated and classified as falsifying (∀) or
// witnessing (∃); outer layers inherit the same semantics recursively.
// A stopping Budget and a pluggable StoppingRule decide when to stop
// drawing new samples.
//
// AI-Hints:
//   - The loop is single-threaded and cooperative: it consults the
//     StoppingRule only at ConfidenceCheckInterval boundaries, and checks
//     the MaxTime bound after every evaluated test, matching the module's
//     single-threaded concurrency model.
//   - Preconditions (pre()) discard a test rather than counting it as a
//     pass or fail; stopping rules must treat discards as non-events.
package explorer
