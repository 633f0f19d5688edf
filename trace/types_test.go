package trace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dbsp/trace"
	"github.com/katalvlaran/dbsp/zset"
)

type edge struct {
	from, to string
}

func TestGroupBy(t *testing.T) {
	edges := zset.Set[edge]{
		{"a", "b"}: 1,
		{"a", "c"}: 1,
		{"b", "c"}: 1,
	}
	byFrom := trace.GroupBy(edges, func(e edge) string { return e.from })
	require.Equal(t, 2, len(byFrom["a"]))
	require.Equal(t, 1, len(byFrom["b"]))
}

func TestJoin_Bilinear(t *testing.T) {
	type pair struct{ a, b string }
	left := trace.Trace[string, string]{
		"1": {"x": 1},
	}
	right := trace.Trace[string, int64]{
		"1": {10: 1},
	}
	out := trace.Join(left, right, func(k string, v string, w int64) pair {
		return pair{v, k}
	})
	require.Equal(t, zset.Weight(1), out[pair{"x", "1"}])
}

func TestJoin_WeightsMultiply(t *testing.T) {
	left := trace.Trace[string, string]{"k": {"x": 2}}
	right := trace.Trace[string, string]{"k": {"y": -3}}
	out := trace.Join(left, right, func(k, v, w string) string { return v + w })
	require.Equal(t, zset.Weight(-6), out["xy"])
}

func TestAggregate_Sum(t *testing.T) {
	iz := trace.Trace[string, int64]{
		"g1": {10: 1, 20: 1},
		"g2": {5: 2},
	}
	sums := trace.Aggregate(iz, trace.SumInt64())
	require.Equal(t, zset.Weight(1), sums["g1"][30])
	require.Equal(t, zset.Weight(1), sums["g2"][10])
}

func TestAggregate_Count(t *testing.T) {
	iz := trace.Trace[string, string]{
		"g1": {"a": 1, "b": 1, "c": -1},
	}
	counts := trace.Aggregate(iz, trace.Count[string]())
	require.Equal(t, zset.Weight(1), counts["g1"][1])
}

func TestAggregate_MinMax(t *testing.T) {
	iz := trace.Trace[string, int64]{
		"g1": {0: 1, 5: 1, -3: 1},
	}
	mins := trace.Aggregate(iz, trace.Min[int64]())
	maxs := trace.Aggregate(iz, trace.Max[int64]())
	require.Equal(t, zset.Weight(1), mins["g1"][-3])
	require.Equal(t, zset.Weight(1), maxs["g1"][5])
}

func TestTraceAdd_MergesSmallerSide(t *testing.T) {
	a := trace.Trace[string, string]{"k1": {"v": 1}}
	b := trace.Trace[string, string]{"k1": {"v": -1}, "k2": {"w": 1}}
	sum := trace.Add(a, b)
	require.True(t, sum["k1"].IsZero() || sum["k1"] == nil)
	require.Equal(t, zset.Weight(1), sum["k2"]["w"])
}

func TestTraceEncodeDecode_RoundTrip(t *testing.T) {
	outer := zset.KeyCodec[string]{
		EncodeKey: func(s string) []byte { return []byte(s) },
		DecodeKey: func(b []byte) string { return string(b) },
	}
	inner := outer
	tr := trace.Trace[string, string]{
		"k1": {"a": 1, "b": -2},
		"k2": {"c": 4},
	}
	encoded := trace.Encode(tr, outer, inner)
	back, err := trace.Decode(encoded, outer, inner)
	require.NoError(t, err)
	require.True(t, trace.Equal(tr, back))
}

func TestTraceDecode_Truncated(t *testing.T) {
	outer := zset.KeyCodec[string]{
		EncodeKey: func(s string) []byte { return []byte(s) },
		DecodeKey: func(b []byte) string { return string(b) },
	}
	inner := outer
	tr := trace.Trace[string, string]{"k1": {"a": 1}}
	encoded := trace.Encode(tr, outer, inner)

	_, err := trace.Decode(encoded[:2], outer, inner)
	require.ErrorIs(t, err, trace.ErrTruncated)

	_, err = trace.Decode(encoded[:len(encoded)-1], outer, inner)
	require.Error(t, err)
}

func TestBatcher_LazyAndEagerCompaction(t *testing.T) {
	b := trace.NewBatcher[string, string](2)
	b.Append(trace.Trace[string, string]{"k": {"a": 1}})
	require.Equal(t, zset.Weight(1), b.Get("k")["a"])
	b.Append(trace.Trace[string, string]{"k": {"a": -1, "b": 1}})
	// Second append reaches CompactionInterval=2, triggering an eager
	// merge; Snapshot must reflect it regardless.
	snap := b.Snapshot()
	require.Equal(t, zset.Weight(1), snap["k"]["b"])
	_, hasA := snap["k"]["a"]
	require.False(t, hasA)
}
