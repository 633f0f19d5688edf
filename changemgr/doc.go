// Package changemgr implements §4.8's change manager: the optional
// collaborator sitting between the environment and a circuit's source
// streams. It accepts command-level row mutations (insert/delete),
// validates deletes against its own duplicated copy of the integrated
// input when the Manager was created in strict mode (New's strict
// argument), accumulates a pending delta per source, and on CommitAll
// hands one Z-set per source to the circuit and invokes exactly one
// Tick.
package changemgr
