// Package circuit_test benchmarks the end-to-end Tick execution loop
// over a small join circuit, the shape most ticks in practice drive.
package circuit_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dbsp/circuit"
	"github.com/katalvlaran/dbsp/trace"
	"github.com/katalvlaran/dbsp/zset"
)

var tickDeltaSizes = []int{10, 100, 1_000}

func buildJoinCircuit(b *testing.B) *circuit.Circuit {
	bld := circuit.NewBuilder()
	left, err := circuit.AddSource[trace.Trace[int, string]](bld, "left")
	require.NoError(b, err)
	right, err := circuit.AddSource[trace.Trace[int, string]](bld, "right")
	require.NoError(b, err)
	joined, err := circuit.AddJoin(bld, left, right, func(k int, l, r string) string { return l + "-" + r })
	require.NoError(b, err)
	require.NoError(b, circuit.AddSink(bld, joined, "out"))
	c, err := bld.Finalize()
	require.NoError(b, err)
	return c
}

func randomTrace(n int, src *rand.Rand) trace.Trace[int, string] {
	t := trace.Empty[int, string]()
	for i := 0; i < n; i++ {
		k := src.Intn(n)
		t[k] = zset.Add(t[k], zset.Singleton(fmt.Sprintf("v%d", src.Intn(n)), int64(1)))
	}
	return t
}

func BenchmarkTick_Join(b *testing.B) {
	b.ReportAllocs()
	for _, n := range tickDeltaSizes {
		n := n
		b.Run(fmt.Sprintf("deltaSize=%d", n), func(b *testing.B) {
			c := buildJoinCircuit(b)
			src := rand.New(rand.NewSource(42))
			left := randomTrace(n, src)
			right := randomTrace(n, src)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := c.Tick(map[string]any{"left": left, "right": right})
				require.NoError(b, err)
			}
		})
	}
}
