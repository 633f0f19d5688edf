// File: hash.go
// Role: the structural hash used to version snapshots (§6 "Format is
//       versioned by circuit structural hash"), computed once at
//       Finalize from the ordered sequence of node kinds and port
//       types — stable for a given circuit shape, different for any
//       structural change (added/removed/retyped node).

package circuit

import (
	"hash/fnv"
	"strconv"
)

func computeStructuralHash(c *Circuit) uint64 {
	h := fnv.New64a()
	write := func(s string) { _, _ = h.Write([]byte(s)) }

	for _, nid := range c.order {
		rec := c.nodes[nid]
		write(rec.kind)
		write("|in=")
		write(strconv.Itoa(len(rec.inputs)))
		write("|out=")
		for _, s := range rec.outputs {
			write(c.streamTypes[s].String())
			write(",")
		}
		write(";")
	}
	return h.Sum64()
}

// StructuralHash returns the hash embedded in every snapshot taken of
// this circuit; Restore rejects a snapshot whose embedded hash differs.
func (c *Circuit) StructuralHash() uint64 {
	return c.structuralHash
}
