// SPDX-License-Identifier: MIT
package arbitrary

// constantArb always produces the same value c. Its search space has
// exact size 1 (§4.2).
type constantArb struct {
	c Value
}

// Constant returns an Arbitrary whose only pick is c.
//
// Complexity: O(1) for every operation.
func Constant(c Value) Arbitrary {
	return constantArb{c: c}
}

func (a constantArb) Name() string { return "constant" }

func (constantArb) Size() Size { return ExactSize(1) }

func (a constantArb) Pick(RNG) (Pick, bool) { return NewPick(a.c), true }

func (a constantArb) CanGenerate(p Pick) bool { return deepEqual(p.Value, a.c) }

func (a constantArb) CornerCases() []Pick { return []Pick{NewPick(a.c)} }

func (a constantArb) Shrink(Pick) Arbitrary { return a }

func (a constantArb) HashCode(v Value) uint64 { return deepHash(v) }

func (a constantArb) Equal(x, y Value) bool { return deepEqual(x, y) }
