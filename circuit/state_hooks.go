// File: state_hooks.go
// Role: §7's "State hooks" surface — enumerate every delay operator's
//       state, in the stable topological order fixed at Finalize, so
//       package snapshot can walk them without reaching into this
//       package's internals. The order of the delays is stable; each
//       delay's bytes are a gob encoding of its state, and for
//       map-valued state (zset.Set, trace.Trace) gob writes entries in
//       map iteration order, so two encodings of equal state need not be
//       byte-identical.

package circuit

// DelayCount returns the number of delay-class (state-bearing) nodes in
// this circuit.
func (c *Circuit) DelayCount() int {
	return len(c.delayOrder)
}

// DelayStateBytes renders the i-th delay's current state (in stable
// topological order) as opaque bytes.
func (c *Circuit) DelayStateBytes(i int) []byte {
	rec := c.nodes[c.delayOrder[i]]
	return rec.encodeState(rec.state)
}

// SetDelayStateBytes restores the i-th delay's state from opaque bytes
// produced by a prior DelayStateBytes call against a structurally
// identical circuit. Restoring into a structurally different circuit is
// rejected earlier, by package snapshot comparing StructuralHash; this
// method itself trusts its caller.
func (c *Circuit) SetDelayStateBytes(i int, data []byte) {
	rec := c.nodes[c.delayOrder[i]]
	rec.state = rec.decodeState(data)
}
