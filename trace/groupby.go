// File: groupby.go
// Role: group_by(a, key_of) → IZ[K',K] (§4.1), re-keying a flat Z-set
//       into an indexed one.

package trace

import "github.com/katalvlaran/dbsp/zset"

// GroupBy re-keys a: for each (t, w) in a, emits t under outer key
// keyOf(t) with its original weight preserved as the inner Set's
// weight on t itself. This is the constructor every join and aggregate
// input in this package expects to already be in: a flat relation
// grouped by its join/aggregation key.
//
// Complexity: O(len(a)).
func GroupBy[T comparable, K comparable](a zset.Set[T], keyOf func(T) K) Trace[K, T] {
	out := make(Trace[K, T])
	for t, w := range a {
		if w == 0 {
			continue
		}
		k := keyOf(t)
		if out[k] == nil {
			out[k] = zset.Empty[T]()
		}
		out[k][t] = w
	}
	return out
}
