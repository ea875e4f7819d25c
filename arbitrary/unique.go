// SPDX-License-Identifier: MIT
package arbitrary

import "github.com/katalvlaran/lvlath/stats"

// uniqueArb wraps base and, when a sketch is configured, feeds every draw's
// hash into a HyperLogLog-style estimator so Size can report an estimated
// distinct-value count instead of merely echoing base's cardinality.
type uniqueArb struct {
	base   Arbitrary
	sketch *stats.Sketch // nil => Size falls back to base.Size() (§4.2)
}

// Unique returns an Arbitrary identical to base for Pick/CanGenerate/
// CornerCases/Shrink purposes; Size() matches base's by default.
//
// §4.2 notes distinct cardinality is "a count-distinct problem" and is
// "optionally estimated via HyperLogLog" — call WithSketch to opt in.
func Unique(base Arbitrary) Arbitrary {
	if base == nil {
		return NoArbitrary()
	}

	return uniqueArb{base: base}
}

// WithSketch returns a copy of a Unique arbitrary that feeds every Pick's
// hash into a fresh stats.Sketch and reports Size as the sketch's
// cardinality estimate once at least one value has been drawn.
func WithSketch(u Arbitrary) Arbitrary {
	ua, ok := u.(uniqueArb)
	if !ok {
		return u
	}
	ua.sketch = stats.NewSketch()

	return ua
}

func (a uniqueArb) Name() string { return "unique(" + a.base.Name() + ")" }

func (a uniqueArb) Size() Size {
	if a.sketch == nil || a.sketch.Count() == 0 {
		return a.base.Size()
	}

	est := a.sketch.Estimate()
	base := a.base.Size()

	return EstimatedSize(est, 0, base.Hi)
}

func (a uniqueArb) Pick(rng RNG) (Pick, bool) {
	p, ok := a.base.Pick(rng)
	if !ok {
		return Pick{}, false
	}
	if a.sketch != nil {
		a.sketch.Add(a.base.HashCode(p.Value))
	}

	return p, true
}

func (a uniqueArb) CanGenerate(p Pick) bool { return a.base.CanGenerate(p) }

func (a uniqueArb) CornerCases() []Pick { return a.base.CornerCases() }

func (a uniqueArb) Shrink(initial Pick) Arbitrary {
	return uniqueArb{base: a.base.Shrink(initial), sketch: a.sketch}
}

func (a uniqueArb) HashCode(v Value) uint64 { return a.base.HashCode(v) }

func (a uniqueArb) Equal(x, y Value) bool { return a.base.Equal(x, y) }
