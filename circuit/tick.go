// File: tick.go
// Role: §4.5's four-step tick execution, and the §6 "Execution
//       interface": tick(inputs) → outputs.

package circuit

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
)

// Tick executes one clock tick. inputs must have exactly one entry per
// registered source (an empty Z-set is a legal "no change" value, not
// an absent one — §6). Returns one value per registered sink.
//
// An unregistered name in inputs, or a missing registered source, is an
// input error (ErrUnknownSource / ErrMissingSource) and is safely
// recoverable: the circuit is unaffected and the caller may retry with
// corrected inputs. A nested operator's iteration-cap-exceeded
// divergence (§7 "iteration divergence") is likewise recoverable: Tick
// returns it as a normal error wrapping ErrIterationCapExceeded, with a
// nil outputs map for this tick, and the circuit's delay state is left
// exactly as it was before the tick (step 3 never ran), so the next
// Tick call succeeds normally. Any other panic raised by an operator's
// Eval (an out-of-range weight, a type assertion failure from a
// raw-built circuit's port mismatch, a delay latching a value not
// produced this tick) is a genuine internal invariant violation: it is
// logged via glog and re-raised, per §7's "must never occur... crashes
// the worker."
func (c *Circuit) Tick(inputs map[string]any) (outputs map[string]any, err error) {
	for name := range inputs {
		if _, ok := c.sourceNames[name]; !ok {
			return nil, fmt.Errorf("Tick: source %q: %w", name, ErrUnknownSource)
		}
	}
	for name, s := range c.sourceNames {
		v, ok := inputs[name]
		if !ok {
			return nil, fmt.Errorf("Tick: source %q: %w", name, ErrMissingSource)
		}
		c.slots[s] = v
	}

	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok && errors.Is(rerr, ErrIterationCapExceeded) {
				err = fmt.Errorf("Tick: %w", rerr)
				outputs = nil
				return
			}
			glog.Errorf("circuit: internal invariant violation during tick %d: %v", c.tick, r)
			panic(fmt.Errorf("%w: %v", ErrInvariantViolation, r))
		}
	}()

	// Step 2 (§4.5): fire each operator once in topological order.
	for _, nid := range c.order {
		rec := c.nodes[nid]
		if rec.isDelay {
			c.slots[rec.outputs[0]] = rec.state
			continue
		}
		ins := make([]any, len(rec.inputs))
		for i, s := range rec.inputs {
			ins[i] = c.slots[s]
		}
		outs := rec.eval(ins)
		for i, s := range rec.outputs {
			c.slots[s] = outs[i]
		}
	}

	// Step 3 (§4.5): latch delay feedback inputs for the next tick.
	for _, nid := range c.delayOrder {
		rec := c.nodes[nid]
		if rec.feedbackInput < 0 {
			continue
		}
		rec.state = c.slots[rec.feedbackInput]
	}

	// Step 4 (§4.5): deliver sink values.
	outputs = make(map[string]any, len(c.sinkNames))
	for name, s := range c.sinkNames {
		outputs[name] = c.slots[s]
	}
	c.tick++
	return outputs, nil
}

// CurrentTick returns the next tick number to be executed (0-based,
// before the first Tick call).
func (c *Circuit) CurrentTick() int {
	return c.tick
}
