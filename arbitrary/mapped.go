// SPDX-License-Identifier: MIT
package arbitrary

// MapFn transforms a base value into the mapped value.
type MapFn func(Value) Value

// InverseFn attempts to recover a base value from a mapped value. ok is
// false when no base value maps to v (used by CanGenerate/Shrink).
type InverseFn func(v Value) (base Value, ok bool)

// mappedArb applies fn to every value drawn from base, retaining the
// base draw as Pick.Original for shrinking.
type mappedArb struct {
	base    Arbitrary
	fn      MapFn
	inverse InverseFn // nil when the map is not known to be invertible
}

// Mapped returns an Arbitrary that transforms base's draws through fn.
// inverse may be nil; when present it lets CanGenerate/Shrink recover a
// base value and makes Size exact-preserving (the map is then assumed
// injective). When nil, Size degrades to an upper-bound estimate and
// CanGenerate is optimistic (§4.2: "unknown without inverseMap").
func Mapped(base Arbitrary, fn MapFn, inverse InverseFn) Arbitrary {
	if base == nil || fn == nil {
		return NoArbitrary()
	}
	if IsNoArbitrary(base) {
		return NoArbitrary()
	}

	return mappedArb{base: base, fn: fn, inverse: inverse}
}

func (a mappedArb) Name() string { return "mapped(" + a.base.Name() + ")" }

func (a mappedArb) Size() Size {
	base := a.base.Size()
	if a.inverse != nil {
		// Assumed injective: size is preserved exactly.
		return base
	}

	// Non-injective or unknown: base size is only an upper bound.
	if base.Exact {
		return EstimatedSize(base.Value, 0, base.Value)
	}

	return EstimatedSize(base.Value, 0, base.Hi)
}

func (a mappedArb) Pick(rng RNG) (Pick, bool) {
	p, ok := a.base.Pick(rng)
	if !ok {
		return Pick{}, false
	}

	return WithOriginal(a.fn(p.Value), p.Value), true
}

func (a mappedArb) CanGenerate(p Pick) bool {
	if a.inverse == nil {
		// Optimistic: no proof of non-membership available (§4.2).
		return true
	}

	base, ok := a.inverse(p.Value)
	if !ok {
		return false
	}

	return a.base.CanGenerate(NewPick(base))
}

func (a mappedArb) CornerCases() []Pick {
	base := a.base.CornerCases()
	out := make([]Pick, len(base))
	for i, p := range base {
		out[i] = WithOriginal(a.fn(p.Value), p.Value)
	}

	return out
}

// Shrink narrows base using the pick's Original (the preimage) when
// available, falling back to the inverse function, and composes the
// narrowed base arbitrary back through Mapped so results stay mapped
// values.
func (a mappedArb) Shrink(initial Pick) Arbitrary {
	base := initial.Original
	if base == nil && a.inverse != nil {
		if b, ok := a.inverse(initial.Value); ok {
			base = b
		}
	}
	if base == nil {
		return a
	}

	narrowedBase := a.base.Shrink(NewPick(base))

	return Mapped(narrowedBase, a.fn, a.inverse)
}

func (a mappedArb) HashCode(v Value) uint64 { return deepHash(v) }

func (a mappedArb) Equal(x, y Value) bool { return deepEqual(x, y) }
