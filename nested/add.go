// File: add.go
// Role: the §6 "add-nested(child-builder, termination-spec)" wiring
//       primitive — lowers to the same untyped circuit.AddOperator
//       every other combinator in package circuit lowers to, since a
//       Node's port arity and types are fixed per nested computation
//       rather than expressible as a small family of Go type
//       parameters the way AddMap/AddBinary/AddJoin are.

package nested

import (
	"reflect"

	"github.com/katalvlaran/dbsp/circuit"
)

// Add registers n as an operator named kind in b, wired to ins (one
// per n's InPort, same order) and declaring one output stream per
// n's OutPort, typed by outTypes (same order). Returns the output
// stream ids in that order.
func Add(b *circuit.Builder, kind string, n *Node, ins []circuit.StreamID, outTypes []reflect.Type) ([]circuit.StreamID, error) {
	return circuit.AddOperator(b, kind, ins, n, outTypes)
}
