// File: builder.go
// Role: the §6 circuit construction interface — create-circuit (implicit
//       in NewBuilder), add-source, add-operator, add-sink, add-delay,
//       and Finalize.

package circuit

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"reflect"

	"github.com/katalvlaran/dbsp/operator"
)

// AddSource registers a new source stream named name, carrying values of
// type B. Returns a construction error wrapping ErrDuplicateSourceName
// if name was already used, or ErrAlreadyFinalized if called after
// Finalize.
func AddSource[B operator.Batch](b *Builder, name string) (Handle[B], error) {
	var zero Handle[B]
	if b.finalized {
		return zero, fmt.Errorf("AddSource(%q): %w", name, ErrAlreadyFinalized)
	}
	if _, exists := b.c.sourceNames[name]; exists {
		return zero, fmt.Errorf("AddSource(%q): %w", name, ErrDuplicateSourceName)
	}
	id := newStream[B](b.c, -1)
	b.c.sourceNames[name] = id
	return Handle[B]{id: id}, nil
}

// AddSink registers stream in as a sink named name. Returns a
// construction error wrapping ErrDuplicateSinkName if name was already
// used.
func AddSink[B operator.Batch](b *Builder, in Handle[B], name string) error {
	if b.finalized {
		return fmt.Errorf("AddSink(%q): %w", name, ErrAlreadyFinalized)
	}
	if _, exists := b.c.sinkNames[name]; exists {
		return fmt.Errorf("AddSink(%q): %w", name, ErrDuplicateSinkName)
	}
	b.c.sinkNames[name] = in.id
	return nil
}

// raw returns h's stream id, for the typed Add* helpers in this package
// that lower to AddOperator; AddOperator's untyped callers pass raw
// stream ids directly.
func (h Handle[B]) raw() streamID { return h.id }

// RawInputs adapts a slice of typed handles into the untyped streamID
// slice AddOperator expects. Exported as a convenience for generic
// wrapper authors in this package and in package nested.
func RawInputs[B operator.Batch](hs ...Handle[B]) []streamID {
	out := make([]streamID, len(hs))
	for i, h := range hs {
		out[i] = h.id
	}
	return out
}

// RawInput adapts a single typed handle into its StreamID, for callers
// (e.g. package nested) assembling a heterogeneously-typed input list
// port by port rather than from one uniform Handle[B] slice.
func RawInput[B operator.Batch](h Handle[B]) StreamID {
	return h.id
}

// WrapOutput recovers a typed Handle from a StreamID returned by
// AddOperator, for callers (e.g. package nested) that construct their
// output streams through the untyped primitive and need a typed handle
// back to pass into further typed Add* calls or AddSink.
func WrapOutput[B operator.Batch](id StreamID) Handle[B] {
	return Handle[B]{id: id}
}

// AddOperator is the untyped n-ary construction primitive of §6:
// "add-operator(kind, input-streams, params) → output-streams." It is
// the primitive every typed Add* helper in this package lowers to, and
// is also the entry point for callers that assemble circuits without
// Go generics at their call site (e.g. a generated-code front end).
//
// outTypes declares the Go type each output stream carries; node.Eval
// must return exactly len(outTypes) values assignable to those types.
// If node implements operator.Typed (see typed.go), AddOperator
// validates ins against node's declared input types and returns
// ErrPortTypeMismatch on a mismatch; untyped nodes skip this check and
// rely on a panic-turned-ErrInvariantViolation at Tick time for any
// mismatch (see tick.go).
func AddOperator(b *Builder, kind string, ins []streamID, node operator.Node, outTypes []reflect.Type) ([]streamID, error) {
	if b.finalized {
		return nil, fmt.Errorf("AddOperator(%s): %w", kind, ErrAlreadyFinalized)
	}
	if typed, ok := node.(Typed); ok {
		declared := typed.InputTypes()
		if len(declared) != len(ins) {
			return nil, fmt.Errorf("AddOperator(%s): %w: declared %d inputs, got %d", kind, ErrPortTypeMismatch, len(declared), len(ins))
		}
		for i, s := range ins {
			if int(s) >= len(b.c.streamTypes) {
				return nil, fmt.Errorf("AddOperator(%s): %w: input %d refers to unknown stream", kind, ErrDanglingInput, i)
			}
			if b.c.streamTypes[s] != declared[i] {
				return nil, fmt.Errorf("AddOperator(%s): %w: input %d is %s, want %s", kind, ErrPortTypeMismatch, i, b.c.streamTypes[s], declared[i])
			}
		}
	}

	rec := &nodeRecord{
		kind:          kind,
		inputs:        append([]streamID(nil), ins...),
		eval:          node.Eval,
		feedbackInput: -1,
		node:          node,
	}
	idx := nodeID(len(b.c.nodes))
	rec.id = idx
	b.c.nodes = append(b.c.nodes, rec)

	outs := make([]streamID, len(outTypes))
	for i, t := range outTypes {
		id := streamID(b.c.numStreams)
		b.c.numStreams++
		b.c.streamTypes = append(b.c.streamTypes, t)
		b.c.producerOf = append(b.c.producerOf, idx)
		b.c.isSource = append(b.c.isSource, false)
		outs[i] = id
	}
	rec.outputs = outs

	if init, ok := node.(operator.Initializer); ok {
		init.Init()
	}
	return outs, nil
}

// AddDelay registers a delay (z⁻¹) node whose output exists immediately
// but whose feedback input (the value it latches at tick end) is wired
// afterwards with SetDelayInput — the construction-time resolution of
// the physically-cyclic, arena-acyclic pattern in §9. zero is the value
// emitted at tick 0 (§3 "delay (z⁻¹)... with a declared zero at t=0").
func AddDelay[B operator.Batch](b *Builder, zero B) (Handle[B], error) {
	var empty Handle[B]
	if b.finalized {
		return empty, fmt.Errorf("AddDelay: %w", ErrAlreadyFinalized)
	}
	idx := nodeID(len(b.c.nodes))
	rec := &nodeRecord{
		id:            idx,
		kind:          "delay",
		isDelay:       true,
		feedbackInput: -1,
		zero:          zero,
		state:         zero,
	}
	rec.eval = func(in []any) []any { return []any{rec.state} }
	rec.encodeState = func(v any) []byte {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(v.(B)); err != nil {
			panic(fmt.Errorf("circuit: encoding delay state: %w", err))
		}
		return buf.Bytes()
	}
	rec.decodeState = func(data []byte) any {
		var v B
		if len(data) > 0 {
			if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
				panic(fmt.Errorf("circuit: decoding delay state: %w", err))
			}
		}
		return v
	}
	b.c.nodes = append(b.c.nodes, rec)

	outID := streamID(b.c.numStreams)
	b.c.numStreams++
	var zt B
	b.c.streamTypes = append(b.c.streamTypes, reflect.TypeOf(zt))
	b.c.producerOf = append(b.c.producerOf, idx)
	b.c.isSource = append(b.c.isSource, false)
	rec.outputs = []streamID{outID}

	return Handle[B]{id: outID}, nil
}

// SetDelayInput wires feedback as the value delay will latch as its new
// state at the end of each tick. May be called exactly once per delay
// handle.
func SetDelayInput[B operator.Batch](b *Builder, delay Handle[B], feedback Handle[B]) error {
	if b.finalized {
		return fmt.Errorf("SetDelayInput: %w", ErrAlreadyFinalized)
	}
	idx := b.c.producerOf[delay.id]
	if idx < 0 {
		return fmt.Errorf("SetDelayInput: %w", ErrNotADelay)
	}
	rec := b.c.nodes[idx]
	if !rec.isDelay {
		return fmt.Errorf("SetDelayInput: %w", ErrNotADelay)
	}
	if rec.feedbackInput != -1 {
		return fmt.Errorf("SetDelayInput: %w", ErrDelayInputAlreadySet)
	}
	rec.feedbackInput = feedback.id
	return nil
}

// Finalize computes the schedule and the state-bearing-operator index,
// performs the build-time checks of §4.4 (dangling ports, feedback not
// mediated by a delay), and returns an immutable, executable *Circuit.
// The Builder must not be used afterwards.
func (b *Builder) Finalize() (*Circuit, error) {
	if b.finalized {
		return nil, ErrAlreadyFinalized
	}

	if err := b.validateNoDangling(); err != nil {
		return nil, err
	}

	order, err := scheduleTopological(b.c)
	if err != nil {
		return nil, err
	}
	b.c.order = order

	var delayOrder []nodeID
	for _, nid := range order {
		if b.c.nodes[nid].isDelay {
			delayOrder = append(delayOrder, nid)
		}
	}
	b.c.delayOrder = delayOrder

	b.c.structuralHash = computeStructuralHash(b.c)
	b.c.slots = make([]any, b.c.numStreams)

	b.finalized = true
	return b.c, nil
}

func (b *Builder) validateNoDangling() error {
	c := b.c
	for _, rec := range c.nodes {
		for _, s := range rec.inputs {
			if int(s) >= len(c.producerOf) {
				return fmt.Errorf("node %q: %w", rec.kind, ErrDanglingInput)
			}
		}
		if rec.isDelay && rec.feedbackInput >= 0 && int(rec.feedbackInput) >= len(c.producerOf) {
			return fmt.Errorf("delay node: %w", ErrDanglingInput)
		}
	}
	for name, s := range c.sinkNames {
		if int(s) >= len(c.producerOf) {
			return fmt.Errorf("sink %q: %w", name, ErrDanglingInput)
		}
	}
	return nil
}
