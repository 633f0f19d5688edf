// File: add_differentiate.go
// Role: the differentiation operator D (§3 "differentiate: per-tick
//       delta, the left inverse of ∫") — D(x)[t] = x[t] - x[t-1],
//       D(x)[0] = x[0] - zero.

package circuit

import (
	"github.com/katalvlaran/dbsp/operator"
	"github.com/katalvlaran/dbsp/trace"
	"github.com/katalvlaran/dbsp/zset"
)

// AddDifferentiate wires D for an arbitrary Batch type, given its
// additive identity, combining function, and negation.
func AddDifferentiate[B operator.Batch](b *Builder, in Handle[B], zero B, add func(B, B) B, neg func(B) B) (Handle[B], error) {
	delayOut, err := AddDelay(b, zero)
	if err != nil {
		return Handle[B]{}, err
	}
	if err := SetDelayInput(b, delayOut, in); err != nil {
		return Handle[B]{}, err
	}
	return AddBinary(b, in, delayOut, func(cur, prev B) B { return add(cur, neg(prev)) })
}

// AddDifferentiateZSet specializes AddDifferentiate to a Z-set stream.
func AddDifferentiateZSet[K comparable](b *Builder, in Handle[zset.Set[K]]) (Handle[zset.Set[K]], error) {
	return AddDifferentiate(b, in, zset.Empty[K](), zset.Add[K], zset.Neg[K])
}

// AddDifferentiateTrace specializes AddDifferentiate to an indexed
// Z-set stream.
func AddDifferentiateTrace[K, V comparable](b *Builder, in Handle[trace.Trace[K, V]]) (Handle[trace.Trace[K, V]], error) {
	return AddDifferentiate(b, in, trace.Empty[K, V](), trace.Add[K, V], trace.Neg[K, V])
}
