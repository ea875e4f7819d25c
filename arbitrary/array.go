// SPDX-License-Identifier: MIT
package arbitrary

// arrayArb draws []Value of length in [minLen, maxLen], each element
// drawn independently from inner.
type arrayArb struct {
	inner          Arbitrary
	minLen, maxLen int
}

// Array returns an Arbitrary over []Value whose length lies in
// [minLen, maxLen] and whose elements are drawn from inner.
//
// Errors (as empty space, §7 EmptySpace):
//   - minLen > maxLen, minLen < 0, or inner is NoArbitrary and minLen > 0.
func Array(inner Arbitrary, minLen, maxLen int) Arbitrary {
	if inner == nil || minLen > maxLen || minLen < 0 {
		return NoArbitrary()
	}
	if IsNoArbitrary(inner) && minLen > 0 {
		return NoArbitrary()
	}

	return arrayArb{inner: inner, minLen: minLen, maxLen: maxLen}
}

func (a arrayArb) Name() string { return "array" }

// Size: exact geometric sum of inner.Size()^k for k in [minLen,maxLen]
// when inner is exact; otherwise estimated, propagating the same formula
// over inner's Lo/Hi/Value (§4.2).
func (a arrayArb) Size() Size {
	inner := a.inner.Size()
	if inner.Exact {
		return ExactSize(geometricSum(inner.Value, a.minLen, a.maxLen))
	}

	return EstimatedSize(
		geometricSum(inner.Value, a.minLen, a.maxLen),
		geometricSum(inner.Lo, a.minLen, a.maxLen),
		geometricSum(inner.Hi, a.minLen, a.maxLen),
	)
}

func (a arrayArb) Pick(rng RNG) (Pick, bool) {
	n := intFromUnit(rng.Float64(), a.minLen, a.maxLen)
	out := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		p, ok := a.inner.Pick(rng)
		if !ok {
			return Pick{}, false
		}
		out = append(out, p.Value)
	}

	return NewPick(out), true
}

func (a arrayArb) CanGenerate(p Pick) bool {
	vs, ok := p.Value.([]Value)
	if !ok {
		return false
	}
	if len(vs) < a.minLen || len(vs) > a.maxLen {
		return false
	}
	for _, v := range vs {
		if !a.inner.CanGenerate(NewPick(v)) {
			return false
		}
	}

	return true
}

// CornerCases covers the empty array (if minLen==0) and single-element
// arrays built from the inner arbitrary's own corner cases.
func (a arrayArb) CornerCases() []Pick {
	var out []Pick
	if a.minLen == 0 {
		out = append(out, NewPick([]Value{}))
	}
	if a.maxLen >= 1 {
		for _, cc := range a.inner.CornerCases() {
			out = append(out, NewPick([]Value{cc.Value}))
		}
	}

	return out
}

// Shrink halves the array's length range, matching §4.2's "by halving
// length" contract. The produced arbitrary's CanGenerate remains a
// subset of the parent's (narrower length window, same inner element
// constraint).
func (a arrayArb) Shrink(initial Pick) Arbitrary {
	vs, ok := initial.Value.([]Value)
	if !ok || len(vs) == 0 {
		return Array(a.inner, 0, 0)
	}

	newMax := len(vs) / 2
	if newMax < a.minLen {
		newMax = a.minLen
	}

	return Array(a.inner, a.minLen, newMax)
}

func (a arrayArb) HashCode(v Value) uint64 { return deepHash(v) }

func (a arrayArb) Equal(x, y Value) bool { return deepEqual(x, y) }
