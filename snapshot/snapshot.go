// File: snapshot.go
// Role: the byte format itself — an 8-byte structural hash header
//       followed by one 4-byte-length-prefixed opaque blob per delay
//       operator, in the circuit's stable topological order.

package snapshot

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/dbsp/circuit"
)

// ErrTruncated is returned by Restore when data ends before the header
// or a declared blob is fully present.
var ErrTruncated = fmt.Errorf("snapshot: truncated data")

// Take renders c's current delay state as an opaque, self-describing
// byte sequence suitable for storage and later Restore.
func Take(c *circuit.Circuit) []byte {
	n := c.DelayCount()
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, c.StructuralHash())

	var lenBuf [4]byte
	for i := 0; i < n; i++ {
		blob := c.DelayStateBytes(i)
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(blob)))
		out = append(out, lenBuf[:]...)
		out = append(out, blob...)
	}
	return out
}

// Restore repopulates c's delay state from data produced by a prior
// Take call. Returns a wrapped circuit.ErrStructuralMismatch if data's
// embedded structural hash does not match c's, and does not modify c
// in that case. c must be otherwise idle (no Tick in flight).
func Restore(c *circuit.Circuit, data []byte) error {
	if len(data) < 8 {
		return ErrTruncated
	}
	hash := binary.BigEndian.Uint64(data[:8])
	if hash != c.StructuralHash() {
		return fmt.Errorf("snapshot: %w", circuit.ErrStructuralMismatch)
	}
	data = data[8:]

	blobs := make([][]byte, 0, c.DelayCount())
	for len(data) > 0 {
		if len(data) < 4 {
			return ErrTruncated
		}
		n := binary.BigEndian.Uint32(data[:4])
		data = data[4:]
		if uint32(len(data)) < n {
			return ErrTruncated
		}
		blobs = append(blobs, data[:n])
		data = data[n:]
	}
	if len(blobs) != c.DelayCount() {
		return fmt.Errorf("snapshot: %w: expected %d delay blobs, got %d", circuit.ErrStructuralMismatch, c.DelayCount(), len(blobs))
	}

	for i, blob := range blobs {
		c.SetDelayStateBytes(i, blob)
	}
	return nil
}
