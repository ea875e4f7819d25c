// SPDX-License-Identifier: MIT
package arbitrary

// integerArb draws int64 values uniformly from the inclusive range
// [min, max]. Size is exact: max-min+1 (§4.2).
type integerArb struct {
	min, max int64
}

// Integer returns an Arbitrary over int64 values in [min, max].
//
// Errors:
//   - returns NoArbitrary() if min > max (ErrInvalidRange semantics; see
//     §7 EmptySpace — this is an absorbing empty space, not a
//     constructor error, matching Filtered/Array's treatment of
//     unsatisfiable constraints).
func Integer(min, max int64) Arbitrary {
	if min > max {
		return NoArbitrary()
	}

	return integerArb{min: min, max: max}
}

func (a integerArb) Name() string { return "integer" }

func (a integerArb) Size() Size {
	return ExactSize(float64(a.max-a.min) + 1)
}

func (a integerArb) Pick(rng RNG) (Pick, bool) {
	v := intFromUnit64(rng.Float64(), a.min, a.max)

	return NewPick(v), true
}

func (a integerArb) CanGenerate(p Pick) bool {
	v, ok := p.Value.(int64)
	if !ok {
		return false
	}

	return v >= a.min && v <= a.max
}

// CornerCases returns min, max, 0 (if in range), and the midpoint,
// deduplicated.
func (a integerArb) CornerCases() []Pick {
	seen := map[int64]bool{}
	var out []Pick
	add := func(v int64) {
		if v < a.min || v > a.max || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, NewPick(v))
	}

	add(a.min)
	add(a.max)
	add(0)
	add(a.min + (a.max-a.min)/2)

	return out
}

// Shrink halves the interval toward zero: it narrows [min,max] to the
// values between initial/2 and initial (initial itself excluded),
// clipped to the parent's range so CanGenerate keeps holding for the
// parent. When initial is already the in-range value closest to zero,
// nothing smaller exists and NoArbitrary is returned.
func (a integerArb) Shrink(initial Pick) Arbitrary {
	v, ok := initial.Value.(int64)
	if !ok {
		return a
	}

	if v == 0 {
		return Constant(int64(0))
	}

	// Narrow toward zero by halving the distance from 0.
	half := v / 2
	lo, hi := a.min, a.max
	if v > 0 {
		hi = v - 1
		if half > lo {
			lo = half
		}
		if lo > hi {
			return NoArbitrary()
		}
	} else {
		lo = v + 1
		if half < hi {
			hi = half
		}
		if hi < lo {
			return NoArbitrary()
		}
	}

	if lo > hi {
		return Constant(int64(0))
	}

	return integerArb{min: lo, max: hi}
}

func (a integerArb) HashCode(v Value) uint64 { return deepHash(v) }

func (a integerArb) Equal(x, y Value) bool { return deepEqual(x, y) }

// intFromUnit64 maps a uniform [0,1) draw u into the inclusive int64
// range [lo, hi].
func intFromUnit64(u float64, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	span := float64(hi-lo) + 1
	off := int64(u * span)
	if off >= hi-lo+1 {
		off = hi - lo
	}

	return lo + off
}
