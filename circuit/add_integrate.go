// File: add_integrate.go
// Role: the integration operator ∫ (§3 "integrate: running sum of a
//       stream of changes, implemented as a delay feeding back into an
//       addition") — I(x)[t] = I(x)[t-1] + x[t], I(x)[-1] = zero.

package circuit

import (
	"github.com/katalvlaran/dbsp/operator"
	"github.com/katalvlaran/dbsp/trace"
	"github.com/katalvlaran/dbsp/zset"
)

// AddIntegrate wires ∫ for an arbitrary Batch type, given its additive
// identity and combining function. The returned handle is both the
// operator's public output and the value latched into the delay for
// the next tick.
func AddIntegrate[B operator.Batch](b *Builder, in Handle[B], zero B, add func(B, B) B) (Handle[B], error) {
	delayOut, err := AddDelay(b, zero)
	if err != nil {
		return Handle[B]{}, err
	}
	sum, err := AddBinary(b, delayOut, in, add)
	if err != nil {
		return Handle[B]{}, err
	}
	if err := SetDelayInput(b, delayOut, sum); err != nil {
		return Handle[B]{}, err
	}
	return sum, nil
}

// AddIntegrateZSet specializes AddIntegrate to a Z-set stream.
func AddIntegrateZSet[K comparable](b *Builder, in Handle[zset.Set[K]]) (Handle[zset.Set[K]], error) {
	return AddIntegrate(b, in, zset.Empty[K](), zset.Add[K])
}

// AddIntegrateTrace specializes AddIntegrate to an indexed Z-set stream.
func AddIntegrateTrace[K, V comparable](b *Builder, in Handle[trace.Trace[K, V]]) (Handle[trace.Trace[K, V]], error) {
	return AddIntegrate(b, in, trace.Empty[K, V](), trace.Add[K, V])
}
