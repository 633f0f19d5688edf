// Package dbsp implements the core of an incremental streaming
// dataflow engine in the DBSP model of computation: views over
// relational inputs are maintained by propagating Z-set deltas through
// a fixed dataflow circuit, rather than recomputing from scratch.
//
// Subpackages:
//
//	zset/      — Z-set algebra: Set[K], Add/Neg/Scale/Distinct, canonical encoding
//	trace/     — indexed Z-sets (Trace[K,V]), GroupBy, the bilinear Join kernel, aggregation
//	operator/  — the Batch/Node/Initializer/StateSnapshotter authoring contract
//	circuit/   — construction, topological scheduling, and tick execution
//	nested/    — the nested fixed-point operator for recursive queries
//	snapshot/  — state snapshot/restore keyed by circuit structural hash
//	changemgr/ — the optional command-level change manager
//
// Construction and execution go through package circuit; see its
// package doc for the builder and tick-execution walkthrough.
package dbsp
