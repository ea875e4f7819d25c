// SPDX-License-Identifier: MIT
package scenario

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/katalvlaran/lvlath/arbitrary"
)

// conditionalClassifier is one Classify(fn, label) registration; the
// combined ClassifyFn evaluates these in registration order and returns
// the first match, documented in DESIGN.md as a resolution of §6's
// classify(fn, label) signature (the spec names the operation but not
// how multiple registrations compose).
type conditionalClassifier struct {
	pred  func(Bindings) bool
	label string
}

// collector is one Collect(fn) registration, accumulating a named
// numeric projection of each passing test tuple.
type collector struct {
	name string
	fn   func(Bindings) float64
}

// coverRegistration is one Cover/CoverTable floor.
type coverRegistration struct {
	label     string
	required  float64
	predicate func(Bindings) bool
}

// Scenario is an immutable-after-build ordered list of ScenarioNodes plus
// the derived bookkeeping (§3 "Scenario = immutable ordered list of nodes
// + derived: quantifiers, hasExistential, searchSpaceSize"). Builder
// methods mutate a Scenario in place and return it for chaining; this is
// the "minimal, non type-level-exotic" fluent surface named in
// SPEC_FULL.md's package layout — it does not track quantifier types at
// the Go type level the way the upstream fluent-check's TypeScript
// generics do.
type Scenario struct {
	nodes []ScenarioNode

	labelFn     func(Bindings) string
	classifiers []conditionalClassifier
	collectors  []collector
	covers      []coverRegistration
	precond     func(Bindings) bool

	strategy Strategy

	// runMu serializes concurrent Check*/compile calls against this
	// Scenario. The core explorer/shrink loop is single-threaded by
	// design (§5), but a Scenario's Forall/Exists arbitraries may include
	// a Filtered instance whose posterior is mutable instance state
	// (arbitrary.Filtered, §4.2); an embedder that fires Check() from
	// multiple goroutines against the same Scenario would otherwise race
	// on that posterior. This lock is defensive, not load-bearing for the
	// documented single-threaded contract.
	runMu sync.Mutex
}

// New returns an empty Scenario ready for Forall/Exists/Given/When/Then.
func New() *Scenario {
	return &Scenario{strategy: defaultStrategy()}
}

func (s *Scenario) nameTaken(name string) bool {
	for _, n := range s.nodes {
		if n.Kind != NodeWhen && n.Kind != NodeThen && n.Name == name {
			return true
		}
	}

	return false
}

// Forall adds a universally-quantified binding: every sample drawn from
// arb must satisfy the eventual Then predicate.
func (s *Scenario) Forall(name string, arb arbitrary.Arbitrary) *Scenario {
	s.nodes = append(s.nodes, ScenarioNode{Kind: NodeForall, Name: name, Arb: arb})

	return s
}

// Exists adds an existentially-quantified binding: at least one sample
// drawn from arb must satisfy the eventual Then predicate.
func (s *Scenario) Exists(name string, arb arbitrary.Arbitrary) *Scenario {
	s.nodes = append(s.nodes, ScenarioNode{Kind: NodeExists, Name: name, Arb: arb})

	return s
}

// Given adds a named fixture binding, resolved once per test tuple before
// any When action runs. src may be:
//   - a constant value of any type, bound as-is;
//   - func() arbitrary.Value, called with no arguments;
//   - func(Bindings) (arbitrary.Value, error), given the tuple so far.
//
// Any other shape is recorded as ErrUnsupportedGivenSource at compile
// time.
func (s *Scenario) Given(name string, src interface{}) *Scenario {
	s.nodes = append(s.nodes, ScenarioNode{Kind: NodeGiven, Name: name, Given: toGivenSource(src)})

	return s
}

// When adds a side-effecting action run once per test tuple, after all
// Given bindings resolve. action may be:
//   - func(Bindings) error;
//   - func(Bindings) (func() error, error), where the first return value
//     is a teardown invoked in reverse declaration order on every exit
//     path (§9 "given/when side-effects").
//
// Any other shape is recorded as ErrUnsupportedWhenAction at compile time.
func (s *Scenario) When(action interface{}) *Scenario {
	s.nodes = append(s.nodes, ScenarioNode{Kind: NodeWhen, When: toWhenAction(action)})

	return s
}

// Precondition registers a guard evaluated before Then on every tuple;
// failure discards the test (testsDiscarded, §4.4/§7 "PreconditionFailed")
// rather than counting as pass or fail. Not part of §6's literal operation
// list but required by its own §4.4/§7 semantics, so it is exposed here as
// a supplemented builder method.
func (s *Scenario) Precondition(fn func(Bindings) bool) *Scenario {
	s.precond = fn

	return s
}

// Then sets the terminal predicate. A Scenario may carry at most one;
// calling Then twice is a construction error surfaced at compile time.
func (s *Scenario) Then(pred Predicate) *Scenario {
	s.nodes = append(s.nodes, ScenarioNode{Kind: NodeThen, Then: pred})

	return s
}

// Config replaces the Scenario's strategy with strategy, per §6
// config(strategy). Nothing is merged: a later Config call replaces an
// earlier one, and Check*'s own opts are applied on top of the stored
// strategy for that run only.
func (s *Scenario) Config(strategy Strategy) *Scenario {
	s.strategy = strategy

	return s
}

// Classify registers a conditional label: whenever a passing test's
// bindings satisfy pred, label is recorded in the run's label counter
// (§6 classify(fn, label)). Multiple registrations are evaluated in
// order; the first matching label wins for a given test, matching the
// Explorer's single-ClassifyFn-per-test contract (§4.4).
func (s *Scenario) Classify(pred func(Bindings) bool, label string) *Scenario {
	s.classifiers = append(s.classifiers, conditionalClassifier{pred: pred, label: label})

	return s
}

// Label sets a direct label-deriving function (§6 label(fn)), taking
// priority over any Classify registrations when both are present.
func (s *Scenario) Label(fn func(Bindings) string) *Scenario {
	s.labelFn = fn

	return s
}

// Collect registers a numeric projection of each passing test's bindings,
// accumulated into its own Welford accumulator (stats.Running) and surfaced under
// FluentStatistics.Collected (§6 collect(fn); the canonical Result schema
// in §6 does not name a field for it, so this is carried as a documented
// extension — see DESIGN.md).
func (s *Scenario) Collect(fn func(Bindings) float64) *Scenario {
	s.collectors = append(s.collectors, collector{name: fmt.Sprintf("collect%d", len(s.collectors)), fn: fn})

	return s
}

// Cover registers a coverage floor: pct percent of tests must satisfy
// pred, counted under label (§6 cover(pct, pred, label)).
func (s *Scenario) Cover(pct float64, pred func(Bindings) bool, label string) *Scenario {
	s.covers = append(s.covers, coverRegistration{label: label, required: pct, predicate: pred})

	return s
}

// CoverTable registers one coverage floor per entry of table, where
// categorizer buckets each tuple into one of table's keys (§6
// coverTable(name, table, categorizer)). Labels are namespaced as
// "name:key" so two tables can reuse category names without colliding.
func (s *Scenario) CoverTable(name string, table map[string]float64, categorizer func(Bindings) string) *Scenario {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		required := table[k]
		key := k
		label := name + ":" + key
		s.covers = append(s.covers, coverRegistration{
			label:    label,
			required: required,
			predicate: func(b Bindings) bool {
				return categorizer(b) == key
			},
		})
	}

	return s
}

// quantifierNodes returns the Forall/Exists nodes in declaration order.
func (s *Scenario) quantifierNodes() []ScenarioNode {
	var out []ScenarioNode
	for _, n := range s.nodes {
		if n.Kind == NodeForall || n.Kind == NodeExists {
			out = append(out, n)
		}
	}

	return out
}

// hasExistential reports whether any quantifier is Exists (§3).
func (s *Scenario) hasExistential() bool {
	for _, n := range s.quantifierNodes() {
		if n.Kind == NodeExists {
			return true
		}
	}

	return false
}

// searchSpaceSize is the product of quantifier sizes (§3
// "searchSpaceSize = ∏ quantifier.size.value"); it may be an
// over-approximation when any quantifier's size is estimated.
func (s *Scenario) searchSpaceSize() float64 {
	total := 1.0
	for _, n := range s.quantifierNodes() {
		if n.Arb == nil {
			return 0
		}
		total *= n.Arb.Size().Value
	}

	return total
}

// validate enforces §3's invariants: unique names, at most one Then, all
// Given/Given-like sources recognized.
func (s *Scenario) validate() error {
	seen := make(map[string]bool)
	thenCount := 0

	for _, n := range s.nodes {
		switch n.Kind {
		case NodeForall, NodeExists, NodeGiven:
			if seen[n.Name] {
				return fmt.Errorf("scenario: name %q: %w", n.Name, ErrDuplicateName)
			}
			seen[n.Name] = true
			if n.Kind == NodeGiven && n.Given == nil {
				return ErrUnsupportedGivenSource
			}
		case NodeWhen:
			if n.When == nil {
				return ErrUnsupportedWhenAction
			}
		case NodeThen:
			thenCount++
			if thenCount > 1 {
				return ErrMultipleThen
			}
		}
	}

	if len(s.quantifierNodes()) == 0 {
		return ErrNoQuantifiers
	}
	if thenCount == 0 {
		return ErrNoThen
	}

	return nil
}

// toGivenSource normalizes Given's accepted shapes into a GivenSource,
// leaving the field nil (caught by validate) for anything unrecognized.
func toGivenSource(src interface{}) GivenSource {
	switch v := src.(type) {
	case GivenSource:
		return v
	case func(Bindings) (arbitrary.Value, error):
		return v
	case func() arbitrary.Value:
		return func(Bindings) (arbitrary.Value, error) { return v(), nil }
	case nil:
		return nil
	default:
		if reflect.TypeOf(v).Kind() == reflect.Func {
			return nil
		}
		value := v

		return func(Bindings) (arbitrary.Value, error) { return value, nil }
	}
}

// toWhenAction normalizes When's accepted shapes into a WhenAction.
func toWhenAction(action interface{}) WhenAction {
	switch v := action.(type) {
	case WhenAction:
		return v
	case func(Bindings) (func() error, error):
		return v
	case func(Bindings) error:
		return func(b Bindings) (func() error, error) {
			return nil, v(b)
		}
	default:
		return nil
	}
}
