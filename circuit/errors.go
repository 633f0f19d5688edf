package circuit

import "errors"

// Sentinel errors, grouped by the five kinds §7 distinguishes. Errors
// returned across this package's public API wrap one of these with %w,
// prefixed by the failing call and its context (e.g. "AddSource(name):",
// "Tick: source name:"), so callers can branch with errors.Is.
var (
	// --- construction errors (recoverable by the caller; detected by
	// Finalize or by the Add* call that introduces the problem) ---

	// ErrDuplicateSinkName is returned when AddSink is called twice with
	// the same name.
	ErrDuplicateSinkName = errors.New("circuit: duplicate sink name")

	// ErrDuplicateSourceName is returned when AddSource is called twice
	// with the same name.
	ErrDuplicateSourceName = errors.New("circuit: duplicate source name")

	// ErrPortTypeMismatch is returned when a raw AddOperator call wires
	// an input stream whose recorded type does not match the operator's
	// declared input type (operator.Typed), or when a typed Add* helper
	// detects a recorded stream type drift (defensive; the Go compiler
	// already prevents this for typed callers).
	ErrPortTypeMismatch = errors.New("circuit: type mismatch on port")

	// ErrFeedbackWithoutDelay is returned by Finalize when the DAG
	// obtained by cutting every delay's feedback input still contains a
	// cycle: a feedback edge exists that is not mediated by a delay.
	ErrFeedbackWithoutDelay = errors.New("circuit: feedback edge without an interposed delay")

	// ErrDanglingInput is returned by Finalize when a node or sink
	// references a stream with no registered producer.
	ErrDanglingInput = errors.New("circuit: dangling input port")

	// ErrDelayInputAlreadySet is returned by SetDelayInput when called
	// twice for the same delay handle.
	ErrDelayInputAlreadySet = errors.New("circuit: delay feedback input already set")

	// ErrNotADelay is returned by SetDelayInput when the given handle
	// does not refer to a delay node.
	ErrNotADelay = errors.New("circuit: handle does not refer to a delay node")

	// ErrAlreadyFinalized is returned by any Add*/Finalize call made
	// after the builder has already finalized; the graph is immutable
	// from that point on (§4.4).
	ErrAlreadyFinalized = errors.New("circuit: builder already finalized")

	// --- input errors (recoverable; detected at Tick) ---

	// ErrUnknownSource is returned by Tick when the input map names a
	// source that was never registered.
	ErrUnknownSource = errors.New("circuit: unknown source name")

	// ErrMissingSource is returned by Tick when a registered source has
	// no entry in the input map for this tick — every tick must supply
	// exactly one Z-set per source (§6), an empty one if there is no
	// change.
	ErrMissingSource = errors.New("circuit: missing value for source")

	// --- iteration divergence (reported; engine remains usable) ---

	// ErrIterationCapExceeded is the value a nested operator's Eval
	// panics with (wrapped) when its child circuit fails to reach
	// quiescence within its cap (§4.6, §7); the owning Circuit's Tick
	// recovers that panic and returns it as an ordinary error.
	ErrIterationCapExceeded = errors.New("circuit: nested iteration cap exceeded")

	// --- state mismatch (recoverable; detected at Restore) ---

	// ErrStructuralMismatch is returned by Restore when a snapshot's
	// embedded structural hash does not match the circuit it is being
	// restored into (§6 "restoring against a non-matching circuit fails
	// with a structural-mismatch error").
	ErrStructuralMismatch = errors.New("circuit: snapshot structural hash mismatch")

	// --- internal invariant violation (fatal; must never occur) ---

	// ErrInvariantViolation wraps any panic raised while Tick fires the
	// operators, other than an iteration-cap divergence: Tick's deferred
	// recover logs it via glog and panics again with this error (see
	// tick.go). No code checks for zero-weight entries or stale delay
	// reads on its own; only panics raised by operators reach this path.
	ErrInvariantViolation = errors.New("circuit: internal invariant violation")
)
