// File: aggregate.go
// Role: the aggregation algebra of §4.1 ("fold the inner Z-set into a
//       scalar with a declared aggregation algebra") plus the
//       ready-made instances from SPEC_FULL's "Aggregation algebra
//       library" supplement (sum, count, min, max).

package trace

import "github.com/katalvlaran/dbsp/zset"

// Monoid folds a weighted inner Z-set (one group of an indexed Z-set)
// into a single scalar of type A. Unit maps one (value, weight) entry
// to its contribution; Combine must be commutative and associative with
// identity Zero, so folding is well-defined regardless of iteration
// order over the inner map.
//
// SumInt64 and Count are genuinely linear (Combine is "+"), so they may
// be applied directly to deltas: aggregating a delta and integrating the
// result equals integrating first and aggregating the total. Min and Max
// are not linear — they are only meaningful applied to an integrated,
// nonnegative-weight trace (the same precondition Distinct carries; see
// zset.Distinct), since "the minimum of the current set" is not a
// property that decomposes over arbitrary retractions.
type Monoid[V comparable, A comparable] struct {
	Zero    A
	Unit    func(v V, w zset.Weight) A
	Combine func(a, b A) A
}

// Aggregate folds, for every outer key, its inner Z-set through agg,
// returning an indexed Z-set with one entry per outer key: the folded
// value with weight 1, per §4.1's "Output IZ[K, A]".
//
// Complexity: O(Σ_k |iz[k]|).
func Aggregate[K comparable, V comparable, A comparable](iz Trace[K, V], agg Monoid[V, A]) Trace[K, A] {
	out := make(Trace[K, A], len(iz))
	for k, inner := range iz {
		var acc A
		has := false
		for v, w := range inner {
			if w == 0 {
				continue
			}
			u := agg.Unit(v, w)
			if !has {
				// Seed the fold with the first contribution directly
				// rather than Combine(Zero, u): this keeps Min/Max
				// correct without a sentinel value standing in for
				// "no accumulator yet" (a real value can legitimately
				// equal Zero).
				acc, has = u, true
				continue
			}
			acc = agg.Combine(acc, u)
		}
		if has {
			out[k] = zset.Singleton(acc, 1)
		}
	}
	return out
}

// SumInt64 sums v*w over the group: the classic linear SUM aggregate.
func SumInt64() Monoid[int64, int64] {
	return Monoid[int64, int64]{
		Zero:    0,
		Unit:    func(v int64, w zset.Weight) int64 { return v * w },
		Combine: func(a, b int64) int64 { return a + b },
	}
}

// Count sums the weights themselves over the group: the number of rows
// currently present (after cancellation), as a linear aggregate.
func Count[V comparable]() Monoid[V, int64] {
	return Monoid[V, int64]{
		Zero:    0,
		Unit:    func(_ V, w zset.Weight) int64 { return w },
		Combine: func(a, b int64) int64 { return a + b },
	}
}

// Min returns the smallest value among entries with nonzero weight; the
// sign of a weight is not inspected, so negative-weight entries are
// included. Only meaningful over an integrated, nonnegative-weight
// trace — see the Monoid doc comment.
func Min[V cmpOrdered]() Monoid[V, V] {
	var zero V
	return Monoid[V, V]{
		Zero: zero,
		Unit: func(v V, w zset.Weight) V { return v },
		Combine: func(a, b V) V {
			if a < b {
				return a
			}
			return b
		},
	}
}

// Max returns the largest value among entries with nonzero weight,
// negative-weight entries included. See Min's caveat.
func Max[V cmpOrdered]() Monoid[V, V] {
	var zero V
	return Monoid[V, V]{
		Zero: zero,
		Unit: func(v V, w zset.Weight) V { return v },
		Combine: func(a, b V) V {
			if a > b {
				return a
			}
			return b
		},
	}
}

// cmpOrdered mirrors the standard library's cmp.Ordered constraint
// locally so Min/Max do not force Go 1.21's cmp package on callers still
// targeting the module's 1.23 floor through an older toolchain path.
type cmpOrdered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}
