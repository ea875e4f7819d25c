// SPDX-License-Identifier: MIT
package shrink

import (
	"math"
	"reflect"

	"github.com/katalvlaran/lvlath/arbitrary"
)

// structuralMetric assigns a "simplicity" score to a value so candidates
// can be sorted smaller-first (§4.6 "sorted so smaller-by-structural-metric
// comes first"). Numeric types use magnitude; strings/containers use
// length; anything else falls back to a reflect-based length probe, or 0.
func structuralMetric(v arbitrary.Value) float64 {
	switch x := v.(type) {
	case int64:
		return math.Abs(float64(x))
	case int:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
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
