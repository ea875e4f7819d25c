// SPDX-License-Identifier: MIT
package sampler

import "errors"

// ErrNilArbitrary is returned when Sample is called on a sampler whose
// source is nil or NoArbitrary.
var ErrNilArbitrary = errors.New("sampler: nil or empty arbitrary")

// ErrInvalidSize is returned when a negative sample size is requested.
var ErrInvalidSize = errors.New("sampler: size must be >= 0")
