// SPDX-License-Identifier: MIT
// Package sampler turns an arbitrary.Arbitrary into a sequence of Picks,
// per §4.3: Uniform (plain pick calls), Biased (corner cases first, then
// random fill), Deduping (seen-set keyed by the arbitrary's hashCode/equals
// with a progress guard), and Cached (memoizes a wrapped Sampler's results
// by requested size).
//
// AI-Hints:
//   - All samplers are deterministic given the same seed and arbitrary
//     state, matching the module-wide bit-for-bit reproducibility
//     contract; inject the RNG via WithSeed/WithRand rather than reaching
//     for a package-global source.
//   - Deduping wraps another Sampler rather than reimplementing draw
//     logic, so Biased+Deduping composes for "corner cases first, then
//     distinct random fill".
package sampler
