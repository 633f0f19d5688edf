// File: node.go
// Role: the nested operator's Eval — §4.6's four-step outer-tick
//       algorithm (fetch outer inputs, lift via δ₀, iterate the child
//       to quiescence, emit the ∫-accumulated outputs).

package nested

import (
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/katalvlaran/dbsp/circuit"
	"github.com/katalvlaran/dbsp/operator"
)

// InPort describes one inbound edge of a nested operator: which of the
// child circuit's registered sources it feeds, and the steady-state
// (post inner-t=0) value the δ₀ adapter emits for every later inner
// tick — ordinarily the Batch's zero value.
type InPort struct {
	ChildSource string
	Zero        any
}

// OutPort describes one outbound edge: which child sink to read, the
// additive identity its accumulator starts from, and the combining
// function ∫ folds successive inner-tick values with.
type OutPort struct {
	ChildSink string
	Zero      any
	Add       func(a, b any) any
}

// Node is the operator.Node a nested fixed-point loop compiles to.
// Construct with New and wire into an outer circuit with Add.
type Node struct {
	child           *circuit.Circuit
	ins             []InPort
	outs            []OutPort
	terminationSink string
	iterationCap    int
}

// New builds a Node wrapping child. terminationSink names one of
// child's registered sinks; iteration stops the inner tick that sink's
// value is the empty Batch (§4.6 "a specified inner stream is the
// empty Z-set this tick"). iterationCap bounds inner ticks per outer
// tick; exceeding it panics with circuit.ErrIterationCapExceeded, which
// the outer circuit's Tick recovers into a normal error return rather
// than a crash (§7 "iteration divergence... engine remains usable"):
// the outer Tick call reports the divergence and the next Tick succeeds
// as usual.
func New(child *circuit.Circuit, ins []InPort, outs []OutPort, terminationSink string, iterationCap int) *Node {
	return &Node{child: child, ins: ins, outs: outs, terminationSink: terminationSink, iterationCap: iterationCap}
}

// Eval runs child to quiescence and returns the ∫-accumulated outputs.
// It panics, rather than returning an error, in every failure case
// below — operator.Node.Eval has no error return — but the panics are
// not equivalent: the outer circuit.Tick distinguishes an
// iteration-cap-exceeded panic (wrapping circuit.ErrIterationCapExceeded)
// as recoverable divergence, while any other child Tick error or a
// malformed termination stream is a genuine internal invariant
// violation and crashes the worker like any other operator panic (see
// circuit.Tick).
func (n *Node) Eval(in []any) []any {
	acc := make([]any, len(n.outs))
	for i, p := range n.outs {
		acc[i] = p.Zero
	}

	for iter := 0; ; iter++ {
		inputMap := make(map[string]any, len(n.ins))
		for i, p := range n.ins {
			if iter == 0 {
				inputMap[p.ChildSource] = in[i]
			} else {
				inputMap[p.ChildSource] = p.Zero
			}
		}

		childOut, err := n.child.Tick(inputMap)
		if err != nil {
			if errors.Is(err, circuit.ErrIterationCapExceeded) {
				// A doubly-nested child already reported its own
				// divergence as a normal error; re-raise it as-is so
				// the outer circuit.Tick's recover still classifies it
				// as recoverable divergence rather than an invariant
				// violation.
				panic(err)
			}
			panic(fmt.Errorf("nested: child tick %d: %w", iter, err))
		}

		for i, p := range n.outs {
			acc[i] = p.Add(acc[i], childOut[p.ChildSink])
		}

		term, ok := childOut[n.terminationSink].(operator.Batch)
		if !ok {
			panic(fmt.Errorf("nested: termination stream %q did not yield an operator.Batch", n.terminationSink))
		}
		if term.IsZero() {
			return acc
		}
		if iter+1 >= n.iterationCap {
			glog.Warningf("nested: iteration cap %d exceeded without reaching quiescence", n.iterationCap)
			panic(fmt.Errorf("nested: %w", circuit.ErrIterationCapExceeded))
		}
	}
}
