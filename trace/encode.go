// File: encode.go
// Role: canonical wire encoding for indexed Z-sets (§6): "indexed
//       Z-sets as nested sequences" — a sequence of (outer-key-bytes,
//       inner Set encoding) pairs in canonical outer-key order.

package trace

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/katalvlaran/dbsp/zset"
)

// Encode renders t as a canonical byte sequence: outer entries sorted
// by the outer codec's EncodeKey ascending, each a 4-byte length-prefixed
// outer key followed by a 4-byte length-prefixed zset.Encode of the
// inner Set using the inner codec.
func Encode[K comparable, V comparable](t Trace[K, V], outer zset.KeyCodec[K], inner zset.KeyCodec[V]) []byte {
	type entry struct {
		key  []byte
		body []byte
	}
	entries := make([]entry, 0, len(t))
	for k, innerSet := range t {
		c := zset.Consolidate(innerSet)
		if len(c) == 0 {
			continue
		}
		entries = append(entries, entry{outer.EncodeKey(k), zset.Encode(c, inner)})
	}
	sort.Slice(entries, func(i, j int) bool {
		return lessBytesLocal(entries[i].key, entries[j].key)
	})

	out := make([]byte, 0, len(entries)*32)
	var lenBuf [4]byte
	for _, e := range entries {
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(e.key)))
		out = append(out, lenBuf[:]...)
		out = append(out, e.key...)
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(e.body)))
		out = append(out, lenBuf[:]...)
		out = append(out, e.body...)
	}
	return out
}

// Decode is the inverse of Encode. Returns ErrTruncated if data ends
// mid-entry, rather than panicking on a corrupted or truncated wire
// payload; wraps any error zset.Decode reports decoding an inner Set.
func Decode[K comparable, V comparable](data []byte, outer zset.KeyCodec[K], inner zset.KeyCodec[V]) (Trace[K, V], error) {
	out := make(Trace[K, V])
	for len(data) > 0 {
		if len(data) < 4 {
			return nil, fmt.Errorf("trace.Decode: outer key length prefix: %w", ErrTruncated)
		}
		klen := binary.BigEndian.Uint32(data[:4])
		data = data[4:]
		if uint64(len(data)) < uint64(klen)+4 {
			return nil, fmt.Errorf("trace.Decode: outer key or inner-body length prefix: %w", ErrTruncated)
		}
		keyBytes := data[:klen]
		data = data[klen:]

		blen := binary.BigEndian.Uint32(data[:4])
		data = data[4:]
		if uint64(len(data)) < uint64(blen) {
			return nil, fmt.Errorf("trace.Decode: inner body: %w", ErrTruncated)
		}
		body := data[:blen]
		data = data[blen:]

		innerSet, err := zset.Decode(body, inner)
		if err != nil {
			return nil, fmt.Errorf("trace.Decode: inner set: %w", err)
		}
		if len(innerSet) > 0 {
			out[outer.DecodeKey(keyBytes)] = innerSet
		}
	}
	return out, nil
}

func lessBytesLocal(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
