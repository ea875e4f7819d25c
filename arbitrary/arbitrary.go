// SPDX-License-Identifier: MIT
package arbitrary

// Arbitrary is a composable value generator with size estimation,
// membership testing, corner-case enumeration, shrinking, and
// identity-insensitive equality — the full capability set named in §3.
//
// Implementations MUST NOT panic; validation failures surface through
// constructors returning (Arbitrary, error) or, for Pick/CanGenerate at
// runtime, through the ok/bool return values.
type Arbitrary interface {
	// Name identifies the arbitrary's kind for diagnostics (e.g. "integer",
	// "filtered(integer)"); not part of equality or hashing.
	Name() string

	// Size returns the (possibly estimated) cardinality of the space.
	Size() Size

	// Pick draws one value using rng. ok is false when the space is
	// empty or (for Filtered) exhausted; callers must not use Value in
	// that case.
	Pick(rng RNG) (p Pick, ok bool)

	// CanGenerate is an optimistic membership test: it returns false only
	// when proof of non-membership is available (§4.2).
	CanGenerate(p Pick) bool

	// CornerCases returns a finite, arbitrary-defined set of high-value
	// samples (endpoints, zero, empty, single, maximum).
	CornerCases() []Pick

	// Shrink returns a new Arbitrary covering a strictly smaller search
	// space, known to contain values simpler than initial. Every value it
	// can produce must satisfy the parent's CanGenerate (§8 invariant 2).
	Shrink(initial Pick) Arbitrary

	// HashCode returns an identity-insensitive deep hash of v, used by
	// Unique and label aggregation buckets.
	HashCode(v Value) uint64

	// Equal reports deep equality of a and b as produced by this
	// arbitrary (§3: "Two picks are equal iff value deep-equals").
	Equal(a, b Value) bool
}

// noArbitrary is the canonical empty arbitrary: zero size, no picks,
// absorbing under product, identity under sum (§4.2, Design Notes §9).
type noArbitrary struct{}

// NoArbitrary returns the canonical zero-size Arbitrary. Containers that
// cannot satisfy their length/range constraints return this rather than a
// sentinel nil, so callers can keep composing without nil-checks.
func NoArbitrary() Arbitrary { return noArbitrary{} }

func (noArbitrary) Name() string { return "no-arbitrary" }

func (noArbitrary) Size() Size { return ExactSize(0) }

func (noArbitrary) Pick(RNG) (Pick, bool) { return Pick{}, false }

func (noArbitrary) CanGenerate(Pick) bool { return false }

func (noArbitrary) CornerCases() []Pick { return nil }

func (n noArbitrary) Shrink(Pick) Arbitrary { return n }

func (noArbitrary) HashCode(Value) uint64 { return 0 }

func (noArbitrary) Equal(a, b Value) bool { return false }

// IsNoArbitrary reports whether a is the canonical empty arbitrary,
// allowing product/sum combinators to special-case it algebraically
// rather than relying on Size().IsZero() (which a legitimately
// zero-cardinality Filtered could also report transiently).
func IsNoArbitrary(a Arbitrary) bool {
	_, ok := a.(noArbitrary)
	return ok
}
