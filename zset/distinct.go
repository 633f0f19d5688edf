// File: distinct.go
// Role: the Distinct normalization operator (§4.1) and its idempotence
//       law (§8 property 4). Distinct is NOT linear: it depends on the
//       sign of each key's weight, not just on sums, so it may only be
//       applied to integrated (running-total) values — see
//       circuit.AddDistinctIncremental for the D(distinct(I(·))) wiring
//       that makes it safe to use incrementally.

package zset

// Distinct returns, for every key k with a.Get(k) > 0, the pair (k, 1);
// keys with weight ≤ 0 are absent from the result. Applying Distinct to
// a Set whose weights are not the integrated total of a delta sequence
// (e.g. applying it directly to a single delta) does not recover "is
// this key currently present" — that question is only well-posed over
// an integrated trace, which is why §4.7 wires Distinct after
// integration and differentiates the result.
//
// Complexity: O(len(a)).
func Distinct[K comparable](a Set[K]) Set[K] {
	out := make(Set[K], len(a))
	for k, w := range a {
		if w > 0 {
			out[k] = 1
		}
	}
	return out
}
