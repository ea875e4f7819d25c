// SPDX-License-Identifier: MIT
package arbitrary

// setArb draws []Value of pairwise-distinct (per elements.Equal) values,
// with length in [minLen, maxLen].
type setArb struct {
	elements       Arbitrary
	minLen, maxLen int
}

// maxSetDrawAttempts bounds the retry loop Set.Pick uses to find a fresh
// distinct element before giving up on reaching maxLen — mirrors the
// Sampler's deduping "progress guard" (§4.3) at the single-arbitrary
// level.
const maxSetDrawAttempts = 200

// Set returns an Arbitrary over distinct-element []Value of length in
// [minLen, maxLen], drawn from elements.
func Set(elements Arbitrary, minLen, maxLen int) Arbitrary {
	if elements == nil || minLen > maxLen || minLen < 0 {
		return NoArbitrary()
	}
	if IsNoArbitrary(elements) && minLen > 0 {
		return NoArbitrary()
	}

	return setArb{elements: elements, minLen: minLen, maxLen: maxLen}
}

func (a setArb) Name() string { return "set" }

// Size follows the same geometric-sum shape as Array; distinctness makes
// this an upper bound rather than an exact count for estimated inner
// sizes, which is consistent with Size being a best estimate (§3).
func (a setArb) Size() Size {
	inner := a.elements.Size()
	if inner.Exact {
		return ExactSize(geometricSum(inner.Value, a.minLen, a.maxLen))
	}

	return EstimatedSize(
		geometricSum(inner.Value, a.minLen, a.maxLen),
		geometricSum(inner.Lo, a.minLen, a.maxLen),
		geometricSum(inner.Hi, a.minLen, a.maxLen),
	)
}

func (a setArb) Pick(rng RNG) (Pick, bool) {
	target := intFromUnit(rng.Float64(), a.minLen, a.maxLen)
	out := make([]Value, 0, target)

	for len(out) < target {
		attempts := 0
		found := false
		for attempts < maxSetDrawAttempts {
			attempts++
			p, ok := a.elements.Pick(rng)
			if !ok {
				return Pick{}, false
			}
			if !containsEqual(out, p.Value, a.elements) {
				out = append(out, p.Value)
				found = true
				break
			}
		}
		if !found {
			// Can't reach target; accept what we have if it satisfies minLen.
			break
		}
	}

	if len(out) < a.minLen {
		return Pick{}, false
	}

	return NewPick(out), true
}

func containsEqual(haystack []Value, v Value, eq Arbitrary) bool {
	for _, h := range haystack {
		if eq.Equal(h, v) {
			return true
		}
	}

	return false
}

func (a setArb) CanGenerate(p Pick) bool {
	vs, ok := p.Value.([]Value)
	if !ok {
		return false
	}
	if len(vs) < a.minLen || len(vs) > a.maxLen {
		return false
	}
	for i, v := range vs {
		if !a.elements.CanGenerate(NewPick(v)) {
			return false
		}
		for j := i + 1; j < len(vs); j++ {
			if a.elements.Equal(v, vs[j]) {
				return false
			}
		}
	}

	return true
}

func (a setArb) CornerCases() []Pick {
	var out []Pick
	if a.minLen == 0 {
		out = append(out, NewPick([]Value{}))
	}
	if a.maxLen >= 1 {
		for _, cc := range a.elements.CornerCases() {
			out = append(out, NewPick([]Value{cc.Value}))
		}
	}

	return out
}

func (a setArb) Shrink(initial Pick) Arbitrary {
	vs, ok := initial.Value.([]Value)
	if !ok || len(vs) == 0 {
		return Set(a.elements, 0, 0)
	}

	newMax := len(vs) / 2
	if newMax < a.minLen {
		newMax = a.minLen
	}

	return Set(a.elements, a.minLen, newMax)
}

func (a setArb) HashCode(v Value) uint64 { return deepHash(v) }

func (a setArb) Equal(x, y Value) bool { return deepEqual(x, y) }
