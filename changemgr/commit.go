// File: commit.go
// Role: the multi-source commit orchestrator — "on commit, hands one
//       Z-set per source stream to the engine and invokes one tick"
//       (§4.8), generalized across however many sources (each
//       potentially keyed by a different type) a circuit declares.

package changemgr

import "github.com/katalvlaran/dbsp/circuit"

// Source is implemented by every *Manager[K] regardless of K, letting
// CommitAll hold a set of differently-keyed managers in one map.
type Source interface {
	commitAny() any
}

// CommitAll commits every named Manager's pending delta and invokes
// exactly one Tick on c with the resulting per-source Z-sets.
func CommitAll(c *circuit.Circuit, sources map[string]Source) (map[string]any, error) {
	inputs := make(map[string]any, len(sources))
	for name, s := range sources {
		inputs[name] = s.commitAny()
	}
	return c.Tick(inputs)
}
