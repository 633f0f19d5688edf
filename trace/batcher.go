// File: batcher.go
// Role: the "sorted runs merged lazily" storage strategy named by §4.2:
//       appended deltas accumulate as separate runs and are folded into
//       the canonical Trace on demand, amortizing merge cost across
//       many appends. Lookups always observe the logically-merged
//       contents regardless of how many runs are currently pending.

package trace

import "github.com/katalvlaran/dbsp/zset"

// Batcher accumulates appended Trace deltas as unmerged runs and folds
// them into a canonical Trace either lazily (on the next Snapshot) or
// eagerly once CompactionInterval appends have accumulated; Get reads
// through pending runs without folding them. The interval is given to
// NewBatcher directly; circuit.AddJoin keeps its traces as plain
// trace.Trace values and does not use a Batcher.
type Batcher[K comparable, V comparable] struct {
	base    Trace[K, V]
	runs    []Trace[K, V]
	sinceCompaction int

	// CompactionInterval triggers an eager merge once this many Append
	// calls have accumulated pending runs. Zero disables eager
	// compaction (merge only happens lazily, on read).
	CompactionInterval int
}

// NewBatcher returns an empty Batcher with the given compaction
// interval (0 disables eager compaction).
func NewBatcher[K comparable, V comparable](compactionInterval int) *Batcher[K, V] {
	return &Batcher[K, V]{
		base:               Empty[K, V](),
		CompactionInterval: compactionInterval,
	}
}

// Append records delta as a new pending run. O(1): the merge is
// deferred.
func (b *Batcher[K, V]) Append(delta Trace[K, V]) {
	if len(delta) == 0 {
		return
	}
	b.runs = append(b.runs, delta)
	b.sinceCompaction++
	if b.CompactionInterval > 0 && b.sinceCompaction >= b.CompactionInterval {
		b.compact()
	}
}

// compact folds every pending run into base and clears the run list.
// Complexity: O(Σ sizes of pending runs), amortized over
// CompactionInterval appends.
func (b *Batcher[K, V]) compact() {
	for _, run := range b.runs {
		b.base = Add(b.base, run)
	}
	b.runs = nil
	b.sinceCompaction = 0
}

// Snapshot returns the fully merged, consolidated Trace. Forces a
// compaction if any runs are pending.
func (b *Batcher[K, V]) Snapshot() Trace[K, V] {
	if len(b.runs) > 0 {
		b.compact()
	}
	return b.base
}

// Get looks up a single outer key without forcing a full compaction:
// merges only that key's contribution from each pending run into the
// base's current value for k. Pending runs themselves are left
// unmerged, so repeated Get calls on different keys remain cheap even
// with many outstanding runs; Snapshot/Append still amortize the full
// merge.
func (b *Batcher[K, V]) Get(k K) zset.Set[V] {
	acc := b.base[k]
	for _, run := range b.runs {
		if inner, ok := run[k]; ok {
			acc = zset.Add(acc, inner)
		}
	}
	return acc
}
