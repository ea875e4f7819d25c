// SPDX-License-Identifier: MIT
package arbitrary

// booleanArb draws bool values uniformly; exact size 2.
type booleanArb struct{}

// Boolean returns an Arbitrary over {false, true}.
func Boolean() Arbitrary { return booleanArb{} }

func (booleanArb) Name() string { return "boolean" }

func (booleanArb) Size() Size { return ExactSize(2) }

func (booleanArb) Pick(rng RNG) (Pick, bool) {
	return NewPick(rng.Float64() < 0.5), true
}

func (booleanArb) CanGenerate(p Pick) bool {
	_, ok := p.Value.(bool)
	return ok
}

func (booleanArb) CornerCases() []Pick {
	return []Pick{NewPick(false), NewPick(true)}
}

func (a booleanArb) Shrink(initial Pick) Arbitrary {
	v, ok := initial.Value.(bool)
	if ok && v {
		// true shrinks toward false; false has no smaller value.
		return Constant(false)
	}

	return Constant(false)
}

func (booleanArb) HashCode(v Value) uint64 { return deepHash(v) }

func (booleanArb) Equal(x, y Value) bool { return deepEqual(x, y) }
