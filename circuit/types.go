// File: types.go
// Role: the node/stream arena (§9 "index-addressed nodes in an arena;
//       streams are indices, not cross-pointers") and the generic
//       Handle[B] wrapper that gives the typed Add* API compile-time
//       port-type safety.

package circuit

import (
	"reflect"

	"github.com/katalvlaran/dbsp/operator"
)

type streamID int

type nodeID int

// StreamID is the public alias for a stream reference, exported so a
// package built on top of this one (e.g. package nested, wiring a
// child circuit's ports into an outer one) can hold and pass raw
// stream ids without this package needing to know about that caller.
type StreamID = streamID

// Handle identifies a stream carrying values of type B. It is returned
// by every Add* call and consumed by whichever Add* call connects a
// downstream operator to it. Handle is a value type; copying it is
// copying a stream reference, not a stream.
type Handle[B operator.Batch] struct {
	id streamID
}

// nodeRecord is one arena entry: an operator node with its input/output
// stream indices and a type-erased eval closure. Stateless, bilinear,
// and nested nodes all share this representation (§9 "tagged-variant...
// dispatch is fine since dispatch cost is amortized over per-record
// inner loops").
type nodeRecord struct {
	id   nodeID
	kind string

	// inputs are the DAG-contributing input streams: the scheduler's
	// topological sort treats "producer(inputs[i]) feeds this node" as
	// a real edge. A delay node has no entries here; its feedbackInput
	// (below) is deliberately excluded from the DAG per §4.5.
	inputs  []streamID
	outputs []streamID

	eval func(in []any) []any

	isDelay       bool
	feedbackInput streamID // -1 until SetDelayInput is called
	state         any      // current latched value (delay nodes only)
	zero          any      // declared zero for tick 0 (delay nodes only)

	// encodeState/decodeState render a delay's state to/from opaque
	// bytes for package snapshot; nil for non-delay nodes.
	encodeState func(any) []byte
	decodeState func([]byte) any

	node operator.Node // original Node as passed to AddOperator; nil for delay nodes
}

// Circuit is a finalized, immutable dataflow graph ready for Tick.
// Obtain one via Builder.Finalize.
type Circuit struct {
	cfg   Config
	nodes []*nodeRecord

	numStreams  int
	streamTypes []reflect.Type
	producerOf  []nodeID // producerOf[streamID] = index into nodes, or -1 for a source stream
	isSource    []bool

	sourceNames map[string]streamID
	sinkNames   map[string]streamID

	order []nodeID // topological order over non-delay-feedback edges
	delayOrder []nodeID // stable subsequence of order containing only delay nodes, for snapshot

	structuralHash uint64

	tick int

	slots []any // scratch: current tick's value per streamID
}

// Builder accumulates nodes and streams before Finalize. Not safe for
// concurrent use by multiple goroutines (mirrors core.Graph's locking
// note: synchronize externally if you must build concurrently, though
// no sane construction workflow needs to).
type Builder struct {
	c         *Circuit
	finalized bool
}

// NewBuilder creates an empty Builder configured by opts (applied over
// DefaultConfig).
func NewBuilder(opts ...Option) *Builder {
	return &Builder{
		c: &Circuit{
			cfg:         resolveConfig(opts...),
			sourceNames: make(map[string]streamID),
			sinkNames:   make(map[string]streamID),
		},
	}
}

// newStream allocates a fresh stream index carrying values of type B,
// recording its producer (or -1 for sources, patched in by the caller).
func newStream[B operator.Batch](c *Circuit, producer nodeID) streamID {
	id := streamID(c.numStreams)
	c.numStreams++
	var zero B
	c.streamTypes = append(c.streamTypes, reflect.TypeOf(zero))
	c.producerOf = append(c.producerOf, producer)
	c.isSource = append(c.isSource, producer < 0)
	return id
}
