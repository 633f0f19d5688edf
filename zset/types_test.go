package zset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dbsp/zset"
)

func TestAdd_CommutativeAssociative(t *testing.T) {
	a := zset.Singleton("x", 2)
	b := zset.Singleton("y", -1)
	c := zset.Singleton("x", -2)

	require.True(t, zset.Equal(zset.Add(a, b), zset.Add(b, a)))

	left := zset.Add(zset.Add(a, b), c)
	right := zset.Add(a, zset.Add(b, c))
	require.True(t, zset.Equal(left, right))
}

func TestAdd_DropsZeroWeights(t *testing.T) {
	a := zset.Singleton("x", 3)
	b := zset.Singleton("x", -3)
	sum := zset.Add(a, b)
	require.Equal(t, 0, sum.Len())
	require.True(t, sum.IsZero())
}

func TestNeg_IsInverse(t *testing.T) {
	a := zset.Add(zset.Singleton("x", 2), zset.Singleton("y", -5))
	require.True(t, zset.Add(a, zset.Neg(a)).IsZero())
}

func TestScale_IdentityAndZero(t *testing.T) {
	a := zset.Add(zset.Singleton("x", 2), zset.Singleton("y", -5))
	require.True(t, zset.Equal(zset.Scale(a, 1), a))
	require.True(t, zset.Scale(a, 0).IsZero())
	require.True(t, zset.Equal(zset.Scale(a, 2), zset.Add(a, a)))
}

func TestSingleton_ZeroWeightIsEmpty(t *testing.T) {
	require.True(t, zset.Singleton("x", 0).IsZero())
	require.Equal(t, 0, zset.Singleton("x", 0).Len())
}

func TestValidate_RejectsStoredZero(t *testing.T) {
	s := zset.Set[string]{"x": 0}
	require.ErrorIs(t, zset.Validate(s), zset.ErrNonConsolidated)
	require.NoError(t, zset.Validate(zset.Consolidate(s)))
}

func TestEqual_IgnoresInsertionOrderAndStoredZeros(t *testing.T) {
	a := zset.Set[string]{"x": 1, "y": 2}
	b := zset.Set[string]{"y": 2, "x": 1, "z": 0}
	require.True(t, zset.Equal(a, b))
}

func TestDistinct_PositivityAndIdempotence(t *testing.T) {
	a := zset.Set[string]{"a": 2, "b": -1, "c": 0}
	d := zset.Distinct(a)
	require.Equal(t, zset.Weight(1), d.Get("a"))
	require.Equal(t, zset.Weight(0), d.Get("b"))
	require.Equal(t, zset.Weight(0), d.Get("c"))
	require.True(t, zset.Equal(zset.Distinct(d), d))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	codec := zset.KeyCodec[string]{
		EncodeKey: func(s string) []byte { return []byte(s) },
		DecodeKey: func(b []byte) string { return string(b) },
	}
	a := zset.Set[string]{"b": 1, "a": -4, "c": 9}
	encoded := zset.Encode(a, codec)
	back, err := zset.Decode(encoded, codec)
	require.NoError(t, err)
	require.True(t, zset.Equal(a, back))
}

func TestDecode_Truncated(t *testing.T) {
	codec := zset.KeyCodec[string]{
		EncodeKey: func(s string) []byte { return []byte(s) },
		DecodeKey: func(b []byte) string { return string(b) },
	}
	encoded := zset.Encode(zset.Set[string]{"key": 1}, codec)

	_, err := zset.Decode(encoded[:2], codec)
	require.ErrorIs(t, err, zset.ErrTruncated)

	_, err = zset.Decode(encoded[:len(encoded)-1], codec)
	require.ErrorIs(t, err, zset.ErrTruncated)
}

func TestEncode_Deterministic(t *testing.T) {
	codec := zset.KeyCodec[string]{
		EncodeKey: func(s string) []byte { return []byte(s) },
		DecodeKey: func(b []byte) string { return string(b) },
	}
	a := zset.Set[string]{"b": 1, "a": -4, "c": 9}
	b := zset.Set[string]{"c": 9, "b": 1, "a": -4}
	require.Equal(t, zset.Encode(a, codec), zset.Encode(b, codec))
}

func TestScale_OverflowPanics(t *testing.T) {
	a := zset.Singleton("x", 1<<62)
	require.Panics(t, func() {
		zset.Scale(a, 4)
	})
}
