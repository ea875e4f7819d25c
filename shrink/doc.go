// SPDX-License-Identifier: MIT
// Package shrink implements the per-quantifier counterexample minimization
// described in §4.6: given a falsifying tuple, search a pluggable strategy
// (Sequential-exhaustive or Round-robin) for a smaller tuple that still
// falsifies, respecting a budget on attempts and rounds.
//
// AI-Hints:
//   - Candidates are drawn from the narrowed arbitrary (Arbitrary.Shrink)
//     with an RNG seeded from a per-session counter, so a session is
//     reproducible, and are tried in ascending structuralMetric order; no
//     binary-search iterator is used.
//   - A candidate is only ever accepted after re-running the full predicate
//     against it — the shrinker never trusts arbitrary.CanGenerate alone to
//     decide falsification.
package shrink
