// SPDX-License-Identifier: MIT
package arbitrary

import "sort"

// unionArb selects one of several children to draw from, weighted by
// each child's Size().Value (§4.2 pick contract).
type unionArb struct {
	children []Arbitrary
}

// Union returns an Arbitrary that is the disjoint sum of children: its
// size is the sum of children's sizes (estimated iff any child is
// estimated, CI summed), and Pick selects a child with probability
// proportional to child.Size().Value via cumulative weights + binary
// search (§4.2). NoArbitrary children are dropped (identity element under
// sum, Design Notes §9); a Union of only NoArbitrary children is itself
// NoArbitrary.
func Union(children ...Arbitrary) Arbitrary {
	var kept []Arbitrary
	for _, c := range children {
		if c == nil || IsNoArbitrary(c) {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return NoArbitrary()
	}
	if len(kept) == 1 {
		return kept[0]
	}

	return unionArb{children: kept}
}

func (a unionArb) Name() string { return "union" }

func (a unionArb) Size() Size {
	total := a.children[0].Size()
	for _, c := range a.children[1:] {
		total = total.Sum(c.Size())
	}

	return total
}

// cumulativeWeights returns the running total of each child's
// Size().Value, used for weighted selection.
func (a unionArb) cumulativeWeights() []float64 {
	cum := make([]float64, len(a.children))
	running := 0.0
	for i, c := range a.children {
		w := c.Size().Value
		if w < 0 {
			w = 0
		}
		running += w
		cum[i] = running
	}

	return cum
}

func (a unionArb) Pick(rng RNG) (Pick, bool) {
	cum := a.cumulativeWeights()
	total := cum[len(cum)-1]
	if total <= 0 {
		// Degenerate: all children report zero weight; fall back to
		// uniform selection over children so Pick still makes progress.
		idx := intFromUnit(rng.Float64(), 0, len(a.children)-1)
		return a.children[idx].Pick(rng)
	}

	target := rng.Float64() * total
	idx := sort.Search(len(cum), func(i int) bool { return cum[i] >= target })
	if idx >= len(a.children) {
		idx = len(a.children) - 1
	}

	return a.children[idx].Pick(rng)
}

func (a unionArb) CanGenerate(p Pick) bool {
	for _, c := range a.children {
		if c.CanGenerate(p) {
			return true
		}
	}

	return false
}

func (a unionArb) CornerCases() []Pick {
	var out []Pick
	for _, c := range a.children {
		out = append(out, c.CornerCases()...)
	}

	return out
}

// Shrink identifies the branch that produced initial (the first child
// whose CanGenerate accepts it) and narrows within that branch only; the
// result is exactly that branch's shrink, a strict subset of the
// union's space so the parent's CanGenerate invariant still holds.
func (a unionArb) Shrink(initial Pick) Arbitrary {
	for _, c := range a.children {
		if c.CanGenerate(initial) {
			return c.Shrink(initial)
		}
	}

	return a
}

func (a unionArb) HashCode(v Value) uint64 { return deepHash(v) }

func (a unionArb) Equal(x, y Value) bool { return deepEqual(x, y) }
