package trace

import "errors"

// Sentinel errors for trace operations. Validate returns them as-is;
// Decode wraps them with %w behind a "trace.Decode: ..." context prefix,
// so callers branch with errors.Is.
var (
	// ErrEmptyInnerSet is returned by Validate when an outer key maps to
	// an inner Set with no nonzero weights — the one invariant specific
	// to Trace beyond what zset.Set already enforces.
	ErrEmptyInnerSet = errors.New("trace: outer key maps to empty inner set")

	// ErrTruncated is returned by Decode when data ends mid-entry, same
	// condition as zset.ErrTruncated but for the outer length-prefixed
	// framing this package adds around each inner zset.Encode blob.
	ErrTruncated = errors.New("trace: truncated encoding")
)
