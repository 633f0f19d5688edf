package zset

import "errors"

// Sentinel errors for zset operations. Validate returns them as-is;
// Decode and the overflow checks wrap them with %w plus context, so
// callers can branch with errors.Is.
var (
	// ErrOverflow indicates a weight arithmetic operation exceeded the
	// range of int64. This is an internal invariant violation per the
	// design's error taxonomy: it must never occur in a correctly
	// bounded circuit and is not meant to be recovered from by the
	// caller, only surfaced.
	ErrOverflow = errors.New("zset: weight overflow")

	// ErrNonConsolidated is returned by Validate when a Set contains a
	// zero-weight entry, which must never escape a consolidating
	// operator.
	ErrNonConsolidated = errors.New("zset: non-consolidated entry (zero weight)")

	// ErrTruncated is returned by Decode when data ends mid-entry: a
	// length prefix claims more bytes than remain, or a trailing
	// partial entry is too short to contain its fixed-size fields.
	ErrTruncated = errors.New("zset: truncated encoding")
)
