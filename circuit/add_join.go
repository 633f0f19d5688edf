// File: add_join.go
// Role: §4.7's incremental bilinear join — the two-trace expansion
//       ΔQ = join(Δa, Ib) + join(Ia_prev, Δb), where Ib = Ib_prev + Δb
//       is this tick's freshly-integrated trace for the right side and
//       Ia_prev is the left side's trace as of the end of the previous
//       tick. Built entirely from AddDelay/AddBinary so its two running
//       traces are ordinary delay state, already covered by
//       state_hooks.go with no separate snapshot path.

package circuit

import (
	"github.com/katalvlaran/dbsp/trace"
	"github.com/katalvlaran/dbsp/zset"
)

// AddJoin wires the incremental equi-join of two indexed Z-set delta
// streams sharing outer key type K, combining matched (value, value)
// pairs via f. da and db must each carry one tick's worth of change
// (the output of a GroupBy/map stage upstream), not a running total.
func AddJoin[K, V, W, O comparable](b *Builder, da Handle[trace.Trace[K, V]], db Handle[trace.Trace[K, W]], f func(K, V, W) O) (Handle[zset.Set[O]], error) {
	taPrev, err := AddDelay(b, trace.Empty[K, V]())
	if err != nil {
		return Handle[zset.Set[O]]{}, err
	}
	tbPrev, err := AddDelay(b, trace.Empty[K, W]())
	if err != nil {
		return Handle[zset.Set[O]]{}, err
	}

	taNew, err := AddBinary(b, taPrev, da, trace.Add[K, V])
	if err != nil {
		return Handle[zset.Set[O]]{}, err
	}
	tbNew, err := AddBinary(b, tbPrev, db, trace.Add[K, W])
	if err != nil {
		return Handle[zset.Set[O]]{}, err
	}
	if err := SetDelayInput(b, taPrev, taNew); err != nil {
		return Handle[zset.Set[O]]{}, err
	}
	if err := SetDelayInput(b, tbPrev, tbNew); err != nil {
		return Handle[zset.Set[O]]{}, err
	}

	joinKernel := func(x trace.Trace[K, V], y trace.Trace[K, W]) zset.Set[O] {
		return trace.Join(x, y, f)
	}
	fresh, err := AddBinary(b, da, tbNew, joinKernel)
	if err != nil {
		return Handle[zset.Set[O]]{}, err
	}
	stale, err := AddBinary(b, taPrev, db, joinKernel)
	if err != nil {
		return Handle[zset.Set[O]]{}, err
	}
	return AddBinary(b, fresh, stale, zset.Add[O])
}
