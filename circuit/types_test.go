package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dbsp/circuit"
	"github.com/katalvlaran/dbsp/trace"
	"github.com/katalvlaran/dbsp/zset"
)

func TestFinalize_DuplicateSourceName(t *testing.T) {
	b := circuit.NewBuilder()
	_, err := circuit.AddSource[zset.Set[string]](b, "edges")
	require.NoError(t, err)
	_, err = circuit.AddSource[zset.Set[string]](b, "edges")
	require.ErrorIs(t, err, circuit.ErrDuplicateSourceName)
}

func TestFinalize_DuplicateSinkName(t *testing.T) {
	b := circuit.NewBuilder()
	src, err := circuit.AddSource[zset.Set[string]](b, "edges")
	require.NoError(t, err)
	require.NoError(t, circuit.AddSink(b, src, "out"))
	err = circuit.AddSink(b, src, "out")
	require.ErrorIs(t, err, circuit.ErrDuplicateSinkName)
}

func TestAddSourceAfterFinalize(t *testing.T) {
	b := circuit.NewBuilder()
	src, err := circuit.AddSource[zset.Set[string]](b, "edges")
	require.NoError(t, err)
	require.NoError(t, circuit.AddSink(b, src, "out"))
	_, err = b.Finalize()
	require.NoError(t, err)

	_, err = circuit.AddSource[zset.Set[string]](b, "more")
	require.ErrorIs(t, err, circuit.ErrAlreadyFinalized)
}

func TestSetDelayInput_Twice(t *testing.T) {
	b := circuit.NewBuilder()
	src, err := circuit.AddSource[zset.Set[string]](b, "in")
	require.NoError(t, err)
	delay, err := circuit.AddDelay(b, zset.Empty[string]())
	require.NoError(t, err)
	require.NoError(t, circuit.SetDelayInput(b, delay, src))
	err = circuit.SetDelayInput(b, delay, src)
	require.ErrorIs(t, err, circuit.ErrDelayInputAlreadySet)
}

func TestSetDelayInput_NotADelay(t *testing.T) {
	b := circuit.NewBuilder()
	src, err := circuit.AddSource[zset.Set[string]](b, "in")
	require.NoError(t, err)
	other, err := circuit.AddSource[zset.Set[string]](b, "other")
	require.NoError(t, err)
	err = circuit.SetDelayInput(b, src, other)
	require.ErrorIs(t, err, circuit.ErrNotADelay)
}

func TestTick_UnknownAndMissingSource(t *testing.T) {
	b := circuit.NewBuilder()
	src, err := circuit.AddSource[zset.Set[string]](b, "in")
	require.NoError(t, err)
	require.NoError(t, circuit.AddSink(b, src, "out"))
	c, err := b.Finalize()
	require.NoError(t, err)

	_, err = c.Tick(map[string]any{"wrong": zset.Empty[string]()})
	require.ErrorIs(t, err, circuit.ErrUnknownSource)

	_, err = c.Tick(map[string]any{})
	require.ErrorIs(t, err, circuit.ErrMissingSource)
}

func TestTick_PassThrough(t *testing.T) {
	b := circuit.NewBuilder()
	src, err := circuit.AddSource[zset.Set[string]](b, "in")
	require.NoError(t, err)
	require.NoError(t, circuit.AddSink(b, src, "out"))
	c, err := b.Finalize()
	require.NoError(t, err)

	delta := zset.Singleton("x", int64(1))
	out, err := c.Tick(map[string]any{"in": delta})
	require.NoError(t, err)
	require.True(t, zset.Equal(out["out"].(zset.Set[string]), delta))
	require.Equal(t, 1, c.CurrentTick())
}

// TestIntegrateThenDifferentiate_IsIdentity exercises D(I(x)) == x tick
// by tick, the identity scenario S1 is built from.
func TestIntegrateThenDifferentiate_IsIdentity(t *testing.T) {
	b := circuit.NewBuilder()
	src, err := circuit.AddSource[zset.Set[string]](b, "in")
	require.NoError(t, err)
	integrated, err := circuit.AddIntegrateZSet(b, src)
	require.NoError(t, err)
	roundTrip, err := circuit.AddDifferentiateZSet(b, integrated)
	require.NoError(t, err)
	require.NoError(t, circuit.AddSink(b, roundTrip, "out"))
	c, err := b.Finalize()
	require.NoError(t, err)

	deltas := []zset.Set[string]{
		zset.Singleton("a", int64(2)),
		zset.Singleton("b", int64(1)),
		zset.Add(zset.Singleton("a", int64(-1)), zset.Singleton("c", int64(3))),
	}
	for _, d := range deltas {
		out, err := c.Tick(map[string]any{"in": d})
		require.NoError(t, err)
		require.True(t, zset.Equal(out["out"].(zset.Set[string]), d))
	}
}

// TestDistinctIncremental_NormalizesMultiplicity exercises scenario S2:
// inserting the same key twice, then retracting once, leaves it present
// with multiplicity exactly 1 until fully retracted.
func TestDistinctIncremental_NormalizesMultiplicity(t *testing.T) {
	b := circuit.NewBuilder()
	src, err := circuit.AddSource[zset.Set[string]](b, "in")
	require.NoError(t, err)
	distinctDelta, err := circuit.AddDistinctIncremental(b, src)
	require.NoError(t, err)
	total, err := circuit.AddIntegrateZSet(b, distinctDelta)
	require.NoError(t, err)
	require.NoError(t, circuit.AddSink(b, total, "out"))
	c, err := b.Finalize()
	require.NoError(t, err)

	_, err = c.Tick(map[string]any{"in": zset.Singleton("x", int64(1))})
	require.NoError(t, err)
	out, err := c.Tick(map[string]any{"in": zset.Singleton("x", int64(1))})
	require.NoError(t, err)
	require.Equal(t, int64(1), out["out"].(zset.Set[string]).Get("x"))

	out, err = c.Tick(map[string]any{"in": zset.Singleton("x", int64(-1))})
	require.NoError(t, err)
	require.Equal(t, int64(1), out["out"].(zset.Set[string]).Get("x"))

	out, err = c.Tick(map[string]any{"in": zset.Singleton("x", int64(-1))})
	require.NoError(t, err)
	require.Equal(t, int64(0), out["out"].(zset.Set[string]).Get("x"))
}

// TestJoin_Incremental exercises scenario S3: joining two key-value
// streams on the shared key, verified incrementally against the
// non-incremental kernel over the integrated totals.
func TestJoin_Incremental(t *testing.T) {
	b := circuit.NewBuilder()
	left, err := circuit.AddSource[trace.Trace[int, string]](b, "left")
	require.NoError(t, err)
	right, err := circuit.AddSource[trace.Trace[int, string]](b, "right")
	require.NoError(t, err)
	joined, err := circuit.AddJoin(b, left, right, func(k int, l, r string) string { return l + "-" + r })
	require.NoError(t, err)
	require.NoError(t, circuit.AddSink(b, joined, "out"))
	c, err := b.Finalize()
	require.NoError(t, err)

	leftTotal := trace.Empty[int, string]()
	rightTotal := trace.Empty[int, string]()

	step := func(leftDelta, rightDelta trace.Trace[int, string]) zset.Set[string] {
		out, err := c.Tick(map[string]any{"left": leftDelta, "right": rightDelta})
		require.NoError(t, err)
		return out["out"].(zset.Set[string])
	}

	l1 := trace.Trace[int, string]{1: zset.Singleton("a", int64(1))}
	got := step(l1, trace.Empty[int, string]())
	leftTotal = trace.Add(leftTotal, l1)
	require.True(t, got.IsZero())

	r1 := trace.Trace[int, string]{1: zset.Singleton("x", int64(1))}
	got = step(trace.Empty[int, string](), r1)
	rightTotal = trace.Add(rightTotal, r1)
	want := trace.Join(leftTotal, rightTotal, func(k int, l, r string) string { return l + "-" + r })
	require.True(t, zset.Equal(got, want))

	l2 := trace.Trace[int, string]{1: zset.Singleton("b", int64(1)), 2: zset.Singleton("c", int64(1))}
	r2 := trace.Trace[int, string]{2: zset.Singleton("y", int64(1))}
	prevTotal := trace.Join(leftTotal, rightTotal, func(k int, l, r string) string { return l + "-" + r })
	got = step(l2, r2)
	leftTotal = trace.Add(leftTotal, l2)
	rightTotal = trace.Add(rightTotal, r2)
	want = trace.Join(leftTotal, rightTotal, func(k int, l, r string) string { return l + "-" + r })
	delta := zset.Add(want, zset.Neg(prevTotal))
	require.True(t, zset.Equal(got, delta))
}

func TestExchange_RoundTripsAllEntries(t *testing.T) {
	b := circuit.NewBuilder()
	src, err := circuit.AddSource[zset.Set[string]](b, "in")
	require.NoError(t, err)
	codec := zset.KeyCodec[string]{
		EncodeKey: func(s string) []byte { return []byte(s) },
		DecodeKey: func(b []byte) string { return string(b) },
	}
	sharded, err := circuit.AddExchange(b, src, 4, func(s string) int { return len(s) }, codec)
	require.NoError(t, err)
	require.NoError(t, circuit.AddSink(b, sharded, "out"))
	c, err := b.Finalize()
	require.NoError(t, err)

	in := zset.Add(zset.Singleton("a", int64(1)), zset.Add(zset.Singleton("bb", int64(2)), zset.Singleton("ccc", int64(-1))))
	out, err := c.Tick(map[string]any{"in": in})
	require.NoError(t, err)
	require.True(t, zset.Equal(out["out"].(zset.Set[string]), in))
}

func TestStructuralHash_StableAcrossInstancesOfSameShape(t *testing.T) {
	build := func() *circuit.Circuit {
		b := circuit.NewBuilder()
		src, err := circuit.AddSource[zset.Set[string]](b, "in")
		require.NoError(t, err)
		out, err := circuit.AddIntegrateZSet(b, src)
		require.NoError(t, err)
		require.NoError(t, circuit.AddSink(b, out, "out"))
		c, err := b.Finalize()
		require.NoError(t, err)
		return c
	}
	c1 := build()
	c2 := build()
	require.Equal(t, c1.StructuralHash(), c2.StructuralHash())
	require.Equal(t, 1, c1.DelayCount())
}
