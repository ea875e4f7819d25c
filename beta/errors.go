package beta

import "errors"

// ErrInvalidParam indicates that alpha or beta is not a finite, strictly
// positive real number.
//
// Usage: if errors.Is(err, ErrInvalidParam) { /* reject the posterior */ }.
var ErrInvalidParam = errors.New("beta: alpha and beta must be finite and > 0")

// ErrInvalidQuantile indicates a quantile outside the open interval (0,1)
// was passed to Inv.
var ErrInvalidQuantile = errors.New("beta: quantile must be in (0,1)")
