// SPDX-License-Identifier: MIT
package stats

import "errors"

// ErrEmptySample is returned by accumulators that require at least one
// observation to produce a meaningful result (e.g. quantiles, histograms).
var ErrEmptySample = errors.New("stats: no samples observed")

// ErrInvalidLevel is returned when a confidence level outside (0,1) is
// requested from a Wilson interval.
var ErrInvalidLevel = errors.New("stats: confidence level must be in (0,1)")
