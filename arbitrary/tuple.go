// SPDX-License-Identifier: MIT
package arbitrary

// tupleArb draws a fixed-length []Value, slot i drawn from children[i].
type tupleArb struct {
	children []Arbitrary
}

// Tuple returns an Arbitrary over []Value of len(children), with each
// slot drawn from the corresponding child. Size is the product of
// children's sizes; estimated iff any child is estimated, with the CI
// propagated as the (conservative, correlation-ignoring) product of CIs
// per §4.2.
func Tuple(children ...Arbitrary) Arbitrary {
	for _, c := range children {
		if c == nil {
			return NoArbitrary()
		}
		if IsNoArbitrary(c) {
			// NoArbitrary is absorbing in products (§4.2, Design Notes §9).
			return NoArbitrary()
		}
	}

	cs := make([]Arbitrary, len(children))
	copy(cs, children)

	return tupleArb{children: cs}
}

func (a tupleArb) Name() string { return "tuple" }

func (a tupleArb) Size() Size {
	if len(a.children) == 0 {
		return ExactSize(1)
	}

	total := a.children[0].Size()
	for _, c := range a.children[1:] {
		total = total.Product(c.Size())
	}

	return total
}

func (a tupleArb) Pick(rng RNG) (Pick, bool) {
	out := make([]Value, len(a.children))
	for i, c := range a.children {
		p, ok := c.Pick(rng)
		if !ok {
			return Pick{}, false
		}
		out[i] = p.Value
	}

	return NewPick(out), true
}

func (a tupleArb) CanGenerate(p Pick) bool {
	vs, ok := p.Value.([]Value)
	if !ok || len(vs) != len(a.children) {
		return false
	}
	for i, c := range a.children {
		if !c.CanGenerate(NewPick(vs[i])) {
			return false
		}
	}

	return true
}

// CornerCases zips the children's corner cases slot-wise: row k takes
// each child's k-th corner case (cycling shorter lists), giving as many
// rows as the longest list (a full cross-product would be
// combinatorial); this matches the
// spirit of §4.2's "finite, arbitrary-defined set of high-value samples"
// without exploding cost for wide tuples.
func (a tupleArb) CornerCases() []Pick {
	if len(a.children) == 0 {
		return []Pick{NewPick([]Value{})}
	}

	slotCases := make([][]Pick, len(a.children))
	maxN := 0
	for i, c := range a.children {
		slotCases[i] = c.CornerCases()
		if len(slotCases[i]) > maxN {
			maxN = len(slotCases[i])
		}
	}
	if maxN == 0 {
		return nil
	}

	out := make([]Pick, 0, maxN)
	for k := 0; k < maxN; k++ {
		row := make([]Value, len(a.children))
		for i, cases := range slotCases {
			if len(cases) == 0 {
				row[i] = nil
				continue
			}
			row[i] = cases[k%len(cases)].Value
		}
		out = append(out, NewPick(row))
	}

	return out
}

// Shrink narrows every child at once, each toward its own slot of
// initial, and recombines them into a Tuple. It is used by the
// Shrinker's per-quantifier loop when a Tuple itself is the top-level
// arbitrary for a single quantifier (e.g. a Record-like composite
// binding).
func (a tupleArb) Shrink(initial Pick) Arbitrary {
	vs, ok := initial.Value.([]Value)
	if !ok || len(vs) != len(a.children) {
		return a
	}

	narrowed := make([]Arbitrary, len(a.children))
	for i, c := range a.children {
		narrowed[i] = c.Shrink(NewPick(vs[i]))
	}

	return Tuple(narrowed...)
}

func (a tupleArb) HashCode(v Value) uint64 { return deepHash(v) }

func (a tupleArb) Equal(x, y Value) bool { return deepEqual(x, y) }
