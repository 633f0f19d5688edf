// File: manager.go
// Role: one source stream's pending-delta accumulator and its
//       deliberately duplicated integrated-input copy (§4.8 "this is a
//       deliberate duplication of state, separate from circuit-internal
//       traces").

package changemgr

import "github.com/katalvlaran/dbsp/zset"

// Manager accumulates command-level row mutations for a single source
// stream of key type K between commits.
type Manager[K comparable] struct {
	strict     bool
	integrated zset.Set[K]
	pending    zset.Set[K]
}

// New creates an empty Manager. When strict is true, Delete rejects
// deleting a row the manager's own integrated copy does not currently
// hold with positive weight.
func New[K comparable](strict bool) *Manager[K] {
	return &Manager[K]{strict: strict, integrated: zset.Empty[K](), pending: zset.Empty[K]()}
}

// Insert accumulates an insertion of k into the pending delta.
// Multiple inserts of the same key before a commit accumulate weight.
func (m *Manager[K]) Insert(k K) {
	m.pending = zset.Add(m.pending, zset.Singleton(k, 1))
}

// Delete accumulates a deletion of k into the pending delta. In strict
// mode, returns ErrDeleteAbsentRow (and leaves the pending delta
// unchanged) if k's integrated weight is not currently positive;
// non-strict mode always accepts the deletion, per §9 Open Question
// (a)'s "validate only at source streams" default.
func (m *Manager[K]) Delete(k K) error {
	if m.strict && m.integrated.Get(k) <= 0 {
		return ErrDeleteAbsentRow
	}
	m.pending = zset.Add(m.pending, zset.Singleton(k, -1))
	return nil
}

// Pending returns the delta accumulated since the last Commit, without
// consuming it.
func (m *Manager[K]) Pending() zset.Set[K] {
	return zset.Clone(m.pending)
}

// Commit folds the pending delta into the integrated copy, clears it,
// and returns it — the Z-set this manager's source stream contributes
// to the next Tick.
func (m *Manager[K]) Commit() zset.Set[K] {
	delta := m.pending
	m.integrated = zset.Add(m.integrated, delta)
	m.pending = zset.Empty[K]()
	return delta
}

// commitAny adapts Commit to the type-erased Source interface CommitAll
// consumes, so a map of differently-keyed Managers can feed one Tick
// call together.
func (m *Manager[K]) commitAny() any {
	return m.Commit()
}
