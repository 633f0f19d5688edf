// Package trace implements indexed Z-sets: Z-sets over pairs (k,v)
// presented as k → Z[v] for efficient per-key access, exactly as §4.2
// specifies. A Trace[K,V] is the storage this project's join, group-by,
// and aggregate operators are built on, and it is also what a bilinear
// join operator retains across ticks as its "own integrated trace"
// (§4.7) — the word trace is the design's name for that retained state,
// hence the package name.
//
// Invariants (inherited from zset.Set, plus one of its own):
//
//   - No outer key maps to an empty inner Z-set: once an inner Set
//     becomes IsZero() it is deleted from the outer map, mirroring how
//     zset drops zero-weight keys.
//   - Add merges by copying the outer map of the operand with more outer
//     keys and folding the smaller operand's keys into it (see Add for
//     its cost).
//
// Batcher demonstrates the "sorted runs merged lazily" note from §4.2:
// appended deltas accumulate in an unmerged slice and are folded into
// the canonical Trace either on demand (Snapshot) or once
// CompactionInterval non-empty Append calls have accumulated, without
// ever changing what a lookup observes.
package trace
