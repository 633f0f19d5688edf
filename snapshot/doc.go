// Package snapshot implements §6's "State snapshot interface":
// snapshot() → opaque bytes enumerating every delay operator's state in
// a stable order, and restore(bytes) repopulating them. The format is
// versioned by the owning circuit's structural hash (circuit.
// StructuralHash); restoring against a circuit with a different shape
// fails with a wrapped circuit.ErrStructuralMismatch rather than
// silently corrupting state.
//
// Per §9's open question (c), the byte layout is stable for round-
// tripping against the same circuit instance or one built from an
// identical sequence of Add* calls, but is not a wire-compatible format
// across circuit-structure changes — the structural hash exists
// precisely to detect that case rather than paper over it.
package snapshot
