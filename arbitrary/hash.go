// SPDX-License-Identifier: MIT
package arbitrary

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// deepHash produces an identity-insensitive hash of v suitable for Unique
// and label-aggregation buckets. It hashes the canonical %#v representation
// via FNV-1a; this is intentionally simple (no custom binary encoding) since
// the algebra only needs a good-enough bucketing function, not a
// cryptographic or collision-free one — reflect.DeepEqual remains the
// source of truth for actual equality (deepEqual below).
func deepHash(v Value) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%#v", v)

	return h.Sum64()
}

// deepEqual reports whether a and b are deeply equal, per §3 ("Two picks
// are equal iff value deep-equals").
func deepEqual(a, b Value) bool {
	return reflect.DeepEqual(a, b)
}
