// SPDX-License-Identifier: MIT
package scenario

import "errors"

// ErrDuplicateName is returned when two ScenarioNodes (quantifiers or
// Given bindings) share a name, violating §3's "names within a scenario
// are unique".
var ErrDuplicateName = errors.New("scenario: duplicate binding name")

// ErrMultipleThen is returned when a second Then node is added; §3 caps a
// Scenario at "at most one Then (terminal)".
var ErrMultipleThen = errors.New("scenario: at most one Then node is allowed")

// ErrNoThen is returned when Check* is called before Then has been set.
var ErrNoThen = errors.New("scenario: no terminal Then predicate")

// ErrNoQuantifiers is returned when a scenario has no Forall/Exists nodes.
var ErrNoQuantifiers = errors.New("scenario: no quantifiers declared")

// ErrUnsupportedGivenSource is returned when Given is called with a value
// that is neither a constant nor one of the two recognized factory shapes.
var ErrUnsupportedGivenSource = errors.New("scenario: unsupported Given source type")

// ErrUnsupportedWhenAction is returned when When is called with a value
// that is neither of the two recognized action shapes.
var ErrUnsupportedWhenAction = errors.New("scenario: unsupported When action type")

// ErrUnknownShrinkStrategy is returned by Strategy.Validate for a
// shrinking strategy name other than "sequential-exhaustive" or "round-robin".
var ErrUnknownShrinkStrategy = errors.New("scenario: unknown shrinking strategy name")

// ErrCoverageInfeasible marks a coverage floor proven unreachable (§7
// "CoverageInfeasible"); surfaced via FluentResult.Satisfiable=false
// rather than returned from Check*, matching §7's "never throws into
// user code" propagation policy.
var ErrCoverageInfeasible = errors.New("scenario: coverage floor infeasible")
