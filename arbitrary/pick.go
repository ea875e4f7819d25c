// SPDX-License-Identifier: MIT
package arbitrary

// Value is the untyped payload carried by a Pick. See the package doc for
// why the algebra is erased rather than generic.
type Value = interface{}

// Pick is one produced value plus its pre-map original (the preimage
// through any Mapped transform, used for shrinking per §3). When the
// producing arbitrary performs no transform, Original equals Value (see
// NewPick); a Pick built by hand may leave Original nil, meaning no
// preimage is known.
type Pick struct {
	Value    Value
	Original Value
}

// NewPick constructs a Pick whose Original equals Value (the common case
// for leaves and containers that do not transform their draws).
func NewPick(v Value) Pick {
	return Pick{Value: v, Original: v}
}

// WithOriginal constructs a Pick recording a distinct preimage, used by
// Mapped to retain the base arbitrary's draw for shrinking.
func WithOriginal(value, original Value) Pick {
	return Pick{Value: value, Original: original}
}
