// File: add_binary.go
// Role: the binary stateless combinator — two streams in, one out,
//       combined pointwise per tick (Z-set union via zset.Add, a scalar
//       product, or any other pure two-argument function).

package circuit

import (
	"reflect"

	"github.com/katalvlaran/dbsp/operator"
)

type binaryNode[A, B, C operator.Batch] struct {
	f func(A, B) C
}

func (n *binaryNode[A, B, C]) Eval(in []any) []any {
	return []any{n.f(in[0].(A), in[1].(B))}
}

func (n *binaryNode[A, B, C]) InputTypes() []reflect.Type {
	var za A
	var zb B
	return []reflect.Type{reflect.TypeOf(za), reflect.TypeOf(zb)}
}

// AddBinary wires a stateless binary operator: out[t] = f(a[t], b[t]).
func AddBinary[A, B, C operator.Batch](bld *Builder, a Handle[A], b Handle[B], f func(A, B) C) (Handle[C], error) {
	var zeroC C
	outs, err := AddOperator(bld, "binary", []streamID{a.raw(), b.raw()}, &binaryNode[A, B, C]{f: f}, []reflect.Type{reflect.TypeOf(zeroC)})
	if err != nil {
		return Handle[C]{}, err
	}
	return Handle[C]{id: outs[0]}, nil
}
