// SPDX-License-Identifier: MIT
package scenario

import (
	"reflect"

	"github.com/katalvlaran/lvlath/arbitrary"
	"github.com/katalvlaran/lvlath/sampler"
	"github.com/katalvlaran/lvlath/stats"
)

// sampleMetric projects a Value into a scalar distribution/length metric
// for per-arbitrary statistics: the signed value itself for numbers
// (shrink.structuralMetric takes the magnitude instead) and the length
// for strings/containers (§4.5 "length-of-value for strings/arrays").
func sampleMetric(v arbitrary.Value) float64 {
	switch x := v.(type) {
	case int64:
		return float64(x)
	case int:
		return float64(x)
	case float64:
		return x
	case bool:
		if x {
			return 1
		}

		return 0
	case string:
		return float64(len(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return float64(rv.Len())
	default:
		return 0
	}
}

// observingSampler wraps a sampler.Sampler, folding every returned pick
// into an ArbitraryStats bundle before returning it to the caller — the
// §4.5 "Per-arbitrary stats (opt-in)" support, implemented as a
// transparent Sampler decorator so the Explorer itself needs no awareness
// of detailed-statistics mode.
type observingSampler struct {
	inner   sampler.Sampler
	arb     arbitrary.Arbitrary
	bundle  *stats.ArbitraryStats
	corners map[uint64]bool
}

// newObservingSampler precomputes a corner-case hash set once so
// Sample calls can cheaply flag corner-case hits without re-enumerating
// CornerCases() per pick.
func newObservingSampler(inner sampler.Sampler, arb arbitrary.Arbitrary, bundle *stats.ArbitraryStats) *observingSampler {
	corners := make(map[uint64]bool)
	for _, cc := range arb.CornerCases() {
		corners[arb.HashCode(cc.Value)] = true
	}

	return &observingSampler{inner: inner, arb: arb, bundle: bundle, corners: corners}
}

func (o *observingSampler) Sample(n int) ([]arbitrary.Pick, error) {
	picks, err := o.inner.Sample(n)
	if err != nil {
		return nil, err
	}

	for _, p := range picks {
		hash := o.arb.HashCode(p.Value)
		o.bundle.Observe(sampleMetric(p.Value), hash, o.corners[hash])
	}

	return picks, nil
}
