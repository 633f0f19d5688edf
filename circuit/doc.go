// Package circuit builds and executes dataflow circuits: the directed
// graph of operator nodes connected by typed streams that §3/§4.4
// describe, plus the topological scheduler of §4.5 that fires it one
// clock tick at a time.
//
// Construction (§6 "Circuit construction interface"):
//
//	b := circuit.NewBuilder()
//	src, _ := circuit.AddSource[zset.Set[string]](b, "edges")
//	out, _ := circuit.AddMap(b, src, someFn)
//	_ = circuit.AddSink(b, out, "reachable")
//	c, err := b.Finalize()
//
// Every node is addressed by an arena index, not a pointer (§9 "index-
// addressed nodes in an arena; streams are indices, not cross-
// pointers"). Streams are type-checked at the Go level by the generic
// Handle[B] wrapper the typed Add* functions return; the untyped
// AddOperator entry point exists for callers (e.g. a SQL compiler) that
// assemble circuits without Go generics available at their call site,
// and validates port types inside the AddOperator call itself for any
// node implementing Typed.
//
// Execution (§6 "Execution interface"):
//
//	outputs, err := c.Tick(map[string]any{"edges": delta})
//
// Feedback (§4.4, §9 "cyclic dataflow without cyclic ownership"): a
// delay's output stream exists the moment AddDelay is called; its input
// (the value it will latch at tick end) is wired afterwards with
// SetDelayInput, which is exactly how a physically-cyclic circuit is
// built from an arena that itself must remain acyclic in memory.
package circuit
