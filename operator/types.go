// File: types.go
// Role: the stream value contract (Batch) and the operator authoring
//       contract (Node), per §4.3.

package operator

// Batch is the capability every value flowing along a circuit stream
// must provide. zset.Set[K] and trace.Trace[K,V] both implement it
// already (their IsZero methods), so any typed stream built from either
// satisfies Batch without an adapter.
type Batch interface {
	// IsZero reports whether this value carries no information — the
	// empty Z-set / indexed Z-set. Used by the nested-circuit
	// termination predicate (§4.6).
	IsZero() bool
}

// Node is implemented by operator authors (§4.3: "Operator authors
// implement: input types, output types, eval(inputs_at_t) →
// outputs_at_t, optional init()..."). Eval must be a pure function of
// its inputs plus whatever internal state the Node owns; it fires
// exactly once per tick and is never re-entrant (§4.3).
//
// package circuit's typed AddMap/AddBinary/AddJoin/... helpers build a
// Node under the hood for every call; authors of genuinely novel
// operators (e.g. a front-end's custom aggregate) implement Node
// directly and register it with circuit.AddOperator.
type Node interface {
	// Eval computes this tick's outputs from this tick's inputs. len(in)
	// and len(out) must match the port counts declared when the Node was
	// registered with a circuit.
	Eval(in []any) (out []any)
}

// Initializer is an optional capability: a Node whose state needs
// preparing before the first tick (§4.3 "optional init()").
type Initializer interface {
	Init()
}

// StateSnapshotter is an optional capability interface for Nodes that
// carry state. No package in this module calls it: package snapshot
// captures only the state of delay nodes created by circuit.AddDelay,
// and a Node registered through circuit.AddOperator is never treated as
// a delay, so its StateSnapshot/StateRestore methods are not invoked.
type StateSnapshotter interface {
	StateSnapshot() []byte
	StateRestore([]byte) error
}
