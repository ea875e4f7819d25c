// SPDX-License-Identifier: MIT
package scenario

import "fmt"

// ExecutableScenario is a Scenario compiled into the ordered pieces the
// runner needs: quantifiers, the predicate closure (Given resolution +
// When side effects + Then), and the given-bindings/when-side-effects
// lists themselves, per §3 "ExecutableScenario = Scenario compiled into
// (ordered quantifiers, predicate closure, given-bindings resolver,
// when-side-effects list)".
type ExecutableScenario struct {
	quantifiers []ScenarioNode
	givens      []ScenarioNode
	whens       []ScenarioNode
	then        Predicate
	precond     func(Bindings) bool
}

// compile validates s and produces its ExecutableScenario. Scenario is
// immutable after this point per §3's lifecycle note ("Scenario is
// immutable after buildScenario()") — callers should not mutate s further
// once compiled, though nothing prevents it since the builder has no
// sealing bit (documented policy, not enforced, matching the teacher's
// preference for explicit contracts over runtime guards where the
// contract is caller-internal).
func (s *Scenario) compile() (*ExecutableScenario, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if err := s.strategy.Validate(); err != nil {
		return nil, err
	}

	ex := &ExecutableScenario{precond: s.precond}
	for _, n := range s.nodes {
		switch n.Kind {
		case NodeForall, NodeExists:
			ex.quantifiers = append(ex.quantifiers, n)
		case NodeGiven:
			ex.givens = append(ex.givens, n)
		case NodeWhen:
			ex.whens = append(ex.whens, n)
		case NodeThen:
			ex.then = n.Then
		}
	}

	return ex, nil
}

// eval runs the full leaf-level evaluation for one fully-bound quantifier
// tuple, given that the Precondition gate (evaluated separately by the
// Explorer on the quantifier-only bindings, see runner.go) already
// passed: resolve Given bindings in declaration order, run When actions
// in declaration order (collecting teardowns), evaluate Then, then tear
// down in reverse acquisition order on every exit path (§9 "given/when
// side-effects … torn down in reverse order of acquisition on all exit
// paths (pass, fail, exception)").
//
// Simplification (documented in DESIGN.md): Precondition predicates see
// only quantifier bindings, not Given fixtures, since Given resolution
// happens inside this function, after the Explorer's Precondition gate
// has already run.
//
// The returned bool/error pair follows explorer.Predicate's contract;
// the runner wraps eval in the Explorer's Predicate field, adding the
// Collect projections on passing tests.
func (ex *ExecutableScenario) eval(quantifierBindings Bindings) (bool, error) {
	bindings := make(Bindings, len(quantifierBindings)+len(ex.givens))
	for k, v := range quantifierBindings {
		bindings[k] = v
	}

	for _, g := range ex.givens {
		v, err := g.Given(bindings)
		if err != nil {
			return false, fmt.Errorf("scenario: given %q: %w", g.Name, err)
		}
		bindings[g.Name] = v
	}

	var teardowns []func() error
	defer func() {
		for i := len(teardowns) - 1; i >= 0; i-- {
			_ = teardowns[i]()
		}
	}()

	for _, w := range ex.whens {
		teardown, err := w.When(bindings)
		if teardown != nil {
			teardowns = append(teardowns, teardown)
		}
		if err != nil {
			return false, err
		}
	}

	return ex.then(bindings)
}
