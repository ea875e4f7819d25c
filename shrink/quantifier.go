// SPDX-License-Identifier: MIT
package shrink

import "github.com/katalvlaran/lvlath/arbitrary"

// Quantifier is the minimal per-quantifier context the shrinker needs:
// its name (the Bindings key) and the arbitrary it was drawn from.
type Quantifier struct {
	Name string
	Arb  arbitrary.Arbitrary
}

// Bindings maps quantifier names to currently bound values.
type Bindings map[string]arbitrary.Value

// Predicate re-evaluates a fully-bound tuple; an error is folded into a
// falsifying (false) result, mirroring the explorer's error handling.
type Predicate func(Bindings) (bool, error)

func runPredicate(pred Predicate, b Bindings) bool {
	ok, err := pred(b)
	if err != nil {
		return false
	}

	return ok
}

func cloneBindings(b Bindings) Bindings {
	out := make(Bindings, len(b))
	for k, v := range b {
		out[k] = v
	}

	return out
}
