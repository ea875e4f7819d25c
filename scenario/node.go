// SPDX-License-Identifier: MIT
package scenario

import "github.com/katalvlaran/lvlath/arbitrary"

// Bindings maps quantifier/given names to their currently bound values for
// one test tuple, per §3.
type Bindings map[string]arbitrary.Value

// Predicate evaluates a fully-bound tuple at the Then terminal.
type Predicate func(Bindings) (bool, error)

// GivenSource resolves one Given binding's value for the current tuple.
// Constructed from whatever Given was called with — see toGivenSource.
type GivenSource func(Bindings) (arbitrary.Value, error)

// WhenAction runs one When side effect for the current tuple, optionally
// returning a teardown invoked in reverse acquisition order on every exit
// path (pass, fail, or predicate error), per §9 "given/when side-effects".
type WhenAction func(Bindings) (teardown func() error, err error)

// NodeKind discriminates the ScenarioNode variants named in §3.
type NodeKind int

const (
	NodeForall NodeKind = iota
	NodeExists
	NodeGiven
	NodeWhen
	NodeThen
)

func (k NodeKind) String() string {
	switch k {
	case NodeForall:
		return "forall"
	case NodeExists:
		return "exists"
	case NodeGiven:
		return "given"
	case NodeWhen:
		return "when"
	case NodeThen:
		return "then"
	default:
		return "unknown"
	}
}

// ScenarioNode is one element of a Scenario's immutable node list, per §3.
// Only the fields relevant to Kind are populated.
type ScenarioNode struct {
	Kind NodeKind
	Name string // Forall/Exists/Given; empty for When/Then

	Arb   arbitrary.Arbitrary // Forall/Exists
	Given GivenSource         // Given
	When  WhenAction          // When
	Then  Predicate           // Then
}
