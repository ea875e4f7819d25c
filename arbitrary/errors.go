// SPDX-License-Identifier: MIT
package arbitrary

import "errors"

// Sentinel errors for the arbitrary package. Callers MUST use errors.Is to
// branch on semantics; sentinels are never wrapped with formatted strings
// at the definition site (mirrors builder/errors.go's policy).
var (
	// ErrSchemaValidation indicates a Record was constructed with a
	// missing or malformed field arbitrary.
	ErrSchemaValidation = errors.New("arbitrary: invalid record schema")

	// ErrEmptySpace indicates an operation was attempted against an
	// arbitrary whose Size() is zero (NoArbitrary or an impossible
	// length/range constraint).
	ErrEmptySpace = errors.New("arbitrary: empty search space")

	// ErrFilterExhausted names the condition in which Filtered.Pick gives
	// up because the posterior's upper credible bound makes further
	// sampling futile. Pick itself reports that condition as ok == false,
	// not by returning this error.
	ErrFilterExhausted = errors.New("arbitrary: filter exhausted")

	// ErrInvalidRange indicates min > max for Integer/Real/Array/Set bounds.
	ErrInvalidRange = errors.New("arbitrary: invalid min/max range")

	// ErrNilChild indicates a combinator was constructed with a nil child
	// Arbitrary (e.g. Mapped(nil, f)).
	ErrNilChild = errors.New("arbitrary: nil child arbitrary")
)
