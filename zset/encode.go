// File: encode.go
// Role: canonical wire encoding (§6 "Wire/serialization") — a Z-set
//       serializes as a sequence of (key-bytes, weight) pairs in
//       canonical key order, so two processes holding the same logical
//       Set produce byte-identical output. circuit.AddExchange
//       round-trips each partition through this format; shard
//       assignment itself is done by the caller's workerOf function, and
//       package snapshot encodes delay state with gob rather than this
//       format.

package zset

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// KeyCodec supplies the two operations Encode/Decode need for an
// arbitrary key type K: a byte encoding and its inverse. Entries are
// always ordered by a lexicographic compare of the encoded bytes, which
// is a valid (if not maximally efficient) total order for any K whose
// encoding is injective.
type KeyCodec[K comparable] struct {
	// EncodeKey renders k as bytes. Must be injective: distinct keys
	// must render to distinct byte strings, or Decode cannot recover
	// the original Set.
	EncodeKey func(K) []byte

	// DecodeKey is the inverse of EncodeKey.
	DecodeKey func([]byte) K
}

// Encode renders s as a canonical byte sequence: entries sorted by
// EncodeKey(k) ascending, each entry a 4-byte big-endian key length,
// the key bytes, then an 8-byte big-endian weight (two's complement).
// Two Sets that are Equal produce identical output; two Sets that are
// not Equal never do. Complexity: O(n log n) for the sort.
func Encode[K comparable](s Set[K], codec KeyCodec[K]) []byte {
	type entry struct {
		key []byte
		w   Weight
	}
	entries := make([]entry, 0, len(s))
	for k, w := range s {
		if w == 0 {
			continue
		}
		entries = append(entries, entry{codec.EncodeKey(k), w})
	}
	sort.Slice(entries, func(i, j int) bool {
		return lessBytes(entries[i].key, entries[j].key)
	})

	out := make([]byte, 0, len(entries)*16)
	var lenBuf [4]byte
	var wBuf [8]byte
	for _, e := range entries {
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(e.key)))
		out = append(out, lenBuf[:]...)
		out = append(out, e.key...)
		binary.BigEndian.PutUint64(wBuf[:], uint64(e.w))
		out = append(out, wBuf[:]...)
	}
	return out
}

// Decode is the inverse of Encode. Returns ErrTruncated if data ends
// mid-entry (a length prefix claims more bytes than remain, or the
// trailing bytes are too short for a length prefix or a weight field)
// rather than panicking on a corrupted or truncated wire payload.
func Decode[K comparable](data []byte, codec KeyCodec[K]) (Set[K], error) {
	out := make(Set[K])
	for len(data) > 0 {
		if len(data) < 4 {
			return nil, fmt.Errorf("zset.Decode: key length prefix: %w", ErrTruncated)
		}
		klen := binary.BigEndian.Uint32(data[:4])
		data = data[4:]
		if uint64(len(data)) < uint64(klen)+8 {
			return nil, fmt.Errorf("zset.Decode: key bytes or weight: %w", ErrTruncated)
		}
		keyBytes := data[:klen]
		data = data[klen:]
		w := int64(binary.BigEndian.Uint64(data[:8]))
		data = data[8:]
		if w != 0 {
			out[codec.DecodeKey(keyBytes)] = w
		}
	}
	return out, nil
}

func lessBytes(a, b []byte) bool {
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
