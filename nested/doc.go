// Package nested implements §4.6's nested fixed-point operator: a
// circuit-valued operator that wraps a child *circuit.Circuit on an
// inner logical clock, lifts each outer input with the δ₀
// constant-stream adapter, runs the child to quiescence against a
// declared termination predicate, and emits the ∫-accumulated child
// outputs as this outer tick's result.
//
// Construction:
//
//	child, err := childBuilder.Finalize()  // a complete, independently-built circuit
//	n := nested.New(child,
//		[]nested.InPort{{ChildSource: "edges", Zero: zset.Empty[Edge]()}},
//		[]nested.OutPort{{ChildSink: "reach", Zero: zset.Empty[Edge](), Add: addEdges}},
//		"new_pairs", 10_000)
//	outs, err := nested.Add(outerBuilder, "transitive_closure", n,
//		[]circuit.StreamID{circuit.RawInput(edgesHandle)},
//		[]reflect.Type{reflect.TypeOf(zset.Empty[Edge]())})
//
// The child circuit's own delay state is ordinary circuit.Circuit
// state: it persists across outer ticks exactly because Node reuses
// the same *circuit.Circuit instance every outer tick, which is what
// §4.6 calls "preserves delay state that is declared outer-
// persistent." Per-iteration accumulators, by contrast, are local to
// one Eval call and never survive past it.
package nested
