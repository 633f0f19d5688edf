// File: types.go
// Role: Trace[K,V] representation and the additive group lifted from
//       zset.Set onto indexed Z-sets (§4.2).
// Concurrency: Trace carries no locks; single-producer per stream, as
//       with zset.Set.

package trace

import "github.com/katalvlaran/dbsp/zset"

// Trace is an indexed Z-set: outer key K maps to an inner Z-set over V.
// The zero value is not usable directly — use Empty.
type Trace[K comparable, V comparable] map[K]zset.Set[V]

// Empty returns the identity Trace: no outer keys.
func Empty[K comparable, V comparable]() Trace[K, V] {
	return make(Trace[K, V])
}

// IsZero reports whether t has no outer key with a nonzero inner Set.
func (t Trace[K, V]) IsZero() bool {
	for _, inner := range t {
		if !inner.IsZero() {
			return false
		}
	}
	return true
}

// Get returns the inner Z-set for k, or a nil Set (zero-value, safe to
// range over and to pass to zset functions that only read) if absent.
func (t Trace[K, V]) Get(k K) zset.Set[V] {
	return t[k]
}

// Consolidate returns a copy of t with every zero-weight inner entry
// removed and every outer key whose inner Set becomes empty dropped.
func Consolidate[K comparable, V comparable](t Trace[K, V]) Trace[K, V] {
	out := make(Trace[K, V], len(t))
	for k, inner := range t {
		c := zset.Consolidate(inner)
		if len(c) > 0 {
			out[k] = c
		}
	}
	return out
}

// Add returns a+b, merging inner Z-sets key-by-key. It copies the outer
// map of whichever operand has more outer keys (sharing, not copying,
// its inner Sets) and merges the smaller operand's keys into that copy,
// so the cost is O(outer keys of the larger operand) plus O(entries of
// the smaller one); it is not bounded by the smaller operand alone.
func Add[K comparable, V comparable](a, b Trace[K, V]) Trace[K, V] {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	out := make(Trace[K, V], len(large))
	for k, inner := range large {
		out[k] = inner
	}
	for k, inner := range small {
		sum := zset.Add(out[k], inner)
		if len(sum) == 0 {
			delete(out, k)
		} else {
			out[k] = sum
		}
	}
	return out
}

// Neg returns −t: every inner Set negated.
func Neg[K comparable, V comparable](t Trace[K, V]) Trace[K, V] {
	out := make(Trace[K, V], len(t))
	for k, inner := range t {
		n := zset.Neg(inner)
		if len(n) > 0 {
			out[k] = n
		}
	}
	return out
}

// Scale returns t·n, every inner Set scaled.
func Scale[K comparable, V comparable](t Trace[K, V], n zset.Weight) Trace[K, V] {
	if n == 0 {
		return Empty[K, V]()
	}
	out := make(Trace[K, V], len(t))
	for k, inner := range t {
		s := zset.Scale(inner, n)
		if len(s) > 0 {
			out[k] = s
		}
	}
	return out
}

// Equal reports value-equality, independent of either map's iteration
// order.
func Equal[K comparable, V comparable](a, b Trace[K, V]) bool {
	ca, cb := Consolidate(a), Consolidate(b)
	if len(ca) != len(cb) {
		return false
	}
	for k, inner := range ca {
		if !zset.Equal(inner, cb[k]) {
			return false
		}
	}
	return true
}

// Validate returns ErrEmptyInnerSet if any outer key maps to an inner
// Set with no nonzero weight, or the first inner-Set validation error.
func Validate[K comparable, V comparable](t Trace[K, V]) error {
	for _, inner := range t {
		if inner.IsZero() {
			return ErrEmptyInnerSet
		}
		if err := zset.Validate(inner); err != nil {
			return err
		}
	}
	return nil
}
