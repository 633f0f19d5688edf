// File: add_map.go
// Role: the unary stateless combinator of §4.3's operator taxonomy — a
//       pure per-tick Z-set/indexed-Z-set transform with no notion of
//       "this tick versus last tick" (selection, projection, a scalar
//       map over an indexed Z-set's values, ...).

package circuit

import (
	"reflect"

	"github.com/katalvlaran/dbsp/operator"
)

type mapNode[A, B operator.Batch] struct {
	f func(A) B
}

func (n *mapNode[A, B]) Eval(in []any) []any {
	return []any{n.f(in[0].(A))}
}

func (n *mapNode[A, B]) InputTypes() []reflect.Type {
	var zero A
	return []reflect.Type{reflect.TypeOf(zero)}
}

// AddMap wires a stateless unary operator: out[t] = f(in[t]). f must be
// a pure function; it is called exactly once per tick.
func AddMap[A, B operator.Batch](b *Builder, in Handle[A], f func(A) B) (Handle[B], error) {
	var zeroB B
	outs, err := AddOperator(b, "map", []streamID{in.raw()}, &mapNode[A, B]{f: f}, []reflect.Type{reflect.TypeOf(zeroB)})
	if err != nil {
		return Handle[B]{}, err
	}
	return Handle[B]{id: outs[0]}, nil
}
