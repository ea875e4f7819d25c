// SPDX-License-Identifier: MIT
package arbitrary

import "math/rand"

// RNG is any seedable uniform source of numbers in [0,1). Per §1, the PRNG
// implementation itself is out of scope: any type satisfying this single
// method suffices (the stdlib *rand.Rand does, wrapped by RandRNG below).
type RNG interface {
	Float64() float64
}

// RandRNG adapts *rand.Rand (or anything with a compatible Float64 method)
// to RNG. It is the default used when a caller passes a seed rather than a
// custom generator factory (§6 withRandomGenerator).
type RandRNG struct {
	r *rand.Rand
}

// NewRandRNG returns an RNG backed by math/rand seeded deterministically.
func NewRandRNG(seed int64) *RandRNG {
	return &RandRNG{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns the next pseudo-random float in [0,1).
func (g *RandRNG) Float64() float64 {
	return g.r.Float64()
}

// Intn returns a pseudo-random int in [0,n), a convenience used by
// container arbitraries that need integer draws (lengths, indices).
func (g *RandRNG) Intn(n int) int {
	return g.r.Intn(n)
}

// intFromUnit maps a uniform [0,1) draw into the inclusive integer range
// [lo, hi], used by every leaf/container that draws discrete values from a
// generic RNG (so non-*rand.Rand implementations of RNG still work).
func intFromUnit(u float64, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	span := hi - lo + 1
	idx := int(u * float64(span))
	if idx >= span {
		idx = span - 1
	}

	return lo + idx
}
