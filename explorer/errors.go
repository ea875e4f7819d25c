// SPDX-License-Identifier: MIT
package explorer

import "errors"

// ErrNoQuantifiers is returned when a scenario has no quantifiers to
// explore.
var ErrNoQuantifiers = errors.New("explorer: scenario has no quantifiers")

// ErrPredicateNil is returned when a scenario's terminal predicate is nil.
var ErrPredicateNil = errors.New("explorer: predicate is nil")
