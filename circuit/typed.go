// File: typed.go
// Role: the optional operator.Node capability that lets AddOperator
//       validate port types on raw-built circuits (§4.4 "an input port
//       may only be connected to a compatible-typed stream").

package circuit

import "reflect"

// Typed is implemented by operator.Node values that want AddOperator to
// validate their input stream types at construction time. Every typed
// wrapper in this package (mapNode, binaryNode, ...) implements it; a
// raw operator.Node built by an external caller may opt in the same way
// or skip it, in which case a type mismatch surfaces as a runtime panic
// recovered into ErrInvariantViolation the first time Eval actually
// receives the wrong dynamic type (see tick.go).
type Typed interface {
	InputTypes() []reflect.Type
}
