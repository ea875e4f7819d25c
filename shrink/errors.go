// SPDX-License-Identifier: MIT
package shrink

import "errors"

// ErrNoCounterexample is returned when Shrink is called with an empty
// counterexample tuple.
var ErrNoCounterexample = errors.New("shrink: no counterexample to minimize")
