// File: add_distinct.go
// Role: §4.7's incremental Distinct recipe — D(distinct(I(x))), the only
//       safe way to apply the non-linear zset.Distinct to a stream of
//       deltas: integrate back to the running total, normalize, then
//       differentiate to recover a delta stream again.

package circuit

import (
	"github.com/katalvlaran/dbsp/zset"
)

// AddDistinctIncremental wires D(distinct(I(in))) for a Z-set delta
// stream, producing the delta stream of the deduplicated running total.
func AddDistinctIncremental[K comparable](b *Builder, in Handle[zset.Set[K]]) (Handle[zset.Set[K]], error) {
	total, err := AddIntegrateZSet(b, in)
	if err != nil {
		return Handle[zset.Set[K]]{}, err
	}
	normalized, err := AddMap(b, total, zset.Distinct[K])
	if err != nil {
		return Handle[zset.Set[K]]{}, err
	}
	return AddDifferentiateZSet(b, normalized)
}
