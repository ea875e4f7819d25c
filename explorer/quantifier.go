// SPDX-License-Identifier: MIT
package explorer

import (
	"github.com/katalvlaran/lvlath/arbitrary"
	"github.com/katalvlaran/lvlath/sampler"
)

// QuantifierKind distinguishes universal from existential quantification.
type QuantifierKind int

const (
	// Forall requires every sample to satisfy the predicate; the first
	// failure becomes the counterexample.
	Forall QuantifierKind = iota
	// Exists requires at least one sample to satisfy the predicate;
	// exhausting all samples with none satisfying falsifies the
	// containing scope.
	Exists
)

// Quantifier binds a name to an arbitrary and a quantification kind, in
// declaration order (outermost first).
type Quantifier struct {
	Name    string
	Kind    QuantifierKind
	Arb     arbitrary.Arbitrary
	Sampler sampler.Sampler
}
