// File: add_exchange.go
// Role: the exchange operator — the shuffle boundary a multi-worker
//       runtime inserts wherever downstream processing must be
//       partitioned by key (§5). Partitions a Z-set by
//       workerOf(k) modulo the worker count, round-trips each
//       partition through the canonical wire encoding of zset.Encode,
//       and merges the partitions back — a single-process stand-in for
//       the network hop a real worker boundary would perform here,
//       still exercising the exact byte format every worker must agree
//       on.

package circuit

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/dbsp/zset"
)

type exchangeNode[K comparable] struct {
	codec    zset.KeyCodec[K]
	workerOf func(K) int
	workers  int
}

func (n *exchangeNode[K]) Eval(in []any) []any {
	s := in[0].(zset.Set[K])
	partitions := make([]zset.Set[K], n.workers)
	for i := range partitions {
		partitions[i] = zset.Empty[K]()
	}
	for k, w := range s {
		idx := n.workerOf(k) % n.workers
		if idx < 0 {
			idx += n.workers
		}
		partitions[idx][k] = w
	}

	out := zset.Empty[K]()
	for _, p := range partitions {
		wire := zset.Encode(p, n.codec)
		received, err := zset.Decode(wire, n.codec)
		if err != nil {
			// wire was just produced by Encode above; a decode error
			// here means the codec itself is not a valid inverse pair,
			// an internal invariant violation rather than a corrupted
			// transport payload.
			panic(fmt.Errorf("circuit: exchange codec round-trip: %w", err))
		}
		out = zset.Add(out, received)
	}
	return []any{out}
}

func (n *exchangeNode[K]) InputTypes() []reflect.Type {
	var zero zset.Set[K]
	return []reflect.Type{reflect.TypeOf(zero)}
}

// AddExchange wires an exchange stage over a Z-set stream: workerOf
// assigns each key to one of workers shards, codec is the shard's wire
// encoding. workers must be >= 1; the circuit's Config.Workers is not
// consulted, so a single circuit may exchange at different fan-out
// widths at different points.
func AddExchange[K comparable](b *Builder, in Handle[zset.Set[K]], workers int, workerOf func(K) int, codec zset.KeyCodec[K]) (Handle[zset.Set[K]], error) {
	var zero zset.Set[K]
	outs, err := AddOperator(b, "exchange", []streamID{in.raw()}, &exchangeNode[K]{codec: codec, workerOf: workerOf, workers: workers}, []reflect.Type{reflect.TypeOf(zero)})
	if err != nil {
		return Handle[zset.Set[K]]{}, err
	}
	return Handle[zset.Set[K]]{id: outs[0]}, nil
}
