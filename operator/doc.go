// Package operator defines the capability interfaces of §4.3: the Batch
// value type every stream carries, and the Node interface a circuit
// operator author implements. package circuit is the only consumer of
// Node in this module, but the interface is exported so a SQL compiler
// or other external collaborator (§1 "out of scope") can hand the
// circuit builder custom operators without reaching into circuit's
// internals — exactly the seam §9's "tagged-variant or trait-object
// dispatch" design note describes.
package operator
