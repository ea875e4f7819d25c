// Package beta implements the Beta(α, β) posterior used throughout
// fluentcheck to track the unknown acceptance rate of a Filtered
// arbitrary and the unknown pass rate of a predicate under confidence
// stopping.
//
// The package is deliberately tiny: a posterior is a pair of positive
// floats plus read operations (Mode, Mean, CDF, Inv, CredibleInterval)
// and one mutation
// (Update). Mutation is the only place in the arbitrary algebra that
// carries state (see arbitrary.Filtered); callers own the lifetime of a
// Posterior and decide when to reset it.
//
// AI-Hints:
//   - New filters start at NewWarmed(2, 1) — biased toward believing the
//     filter accepts — and are pre-seeded with a deterministic warm-up
//     stream (see NewWarmed) to avoid cold-start oscillation.
//   - Inv is only ever evaluated at the credible-interval endpoints
//     (0.05 / 0.95 by default); it is implemented with a bisection over
//     the regularized incomplete beta function, which is monotone in
//     both α/β and q — sufficient for the monotonicity properties the
//     engine relies on (spec invariant: confidence/credible intervals
//     are monotone in α/β).
package beta
