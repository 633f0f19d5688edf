// Package zset implements Z-sets: finite mappings from keys to signed
// integer weights that represent a multiset together with its
// retractions. A positive weight denotes an insertion, a negative weight
// a deletion, and a key absent from the map denotes zero — no net effect.
//
// Z-sets are the value type that flows along every stream in a dbsp
// circuit. They form a commutative group under Add/Neg with identity
// Empty, and the package's operators (Add, Neg, Scale, Distinct),
// together with Join, GroupBy and Aggregate in package trace, are
// exactly the algebra that the incremental operators in package circuit
// lift onto streams.
//
// Consolidation:
//
//   - Every operation in this package is consolidating: the result never
//     contains a key mapped to weight zero. Callers that build a Set by
//     hand (not through these operators) must call Consolidate before
//     handing it to a circuit, or rely on the zero-weight entries being
//     harmless no-ops — but never rely on their presence downstream,
//     since §7 of the design treats a observed zero-weight entry
//     post-consolidation as an internal invariant violation.
//
// Determinism:
//
//   - Set equality (Equal) is value-equality of the consolidated map,
//     independent of insertion order — Go map iteration order is never
//     observable through this package's public API.
//
// Thread safety:
//
//   - Set is a plain map; like core.Graph in the sibling packages this
//     project grew from, a Set is not safe for concurrent mutation. Each
//     stream in a circuit has exactly one producer, so no package here
//     needs internal locking.
package zset
