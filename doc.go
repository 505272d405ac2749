// doc.go — package documentation for xgx-errchain
//
// Package errchain renders an error together with its full cause chain as a
// single human-readable multi-line text block. It is designed to be:
//   - Interoperable with the stdlib (Unwrap() error, fmt.Formatter, fmt.Stringer)
//   - Policy-free (no logging/HTTP/JSON in core; the zap adapter lives in chainzap)
//   - Lazy (no work at construction; rendering happens only when requested)
//
// # Why
//
// Go's default error display shows the outermost message; the causal history
// needed for diagnosis stays buried in the wrap chain. errchain flattens the
// chain into one block just before it is logged or printed:
//
//	top level
//	Caused by:
//	  -> mid level
//	  -> low level
//
// # Usage
//
//	if err := run(); err != nil {
//		fmt.Println(errchain.New(err))
//	}
//
// Chain implements fmt.Stringer and fmt.Formatter, so it drops into Println,
// Printf (%v, %s, %q), and any logger that accepts a Stringer. Render writes
// to an arbitrary io.Writer and propagates the sink's error unmodified.
//
// # Cause Accessors
//
// The chain is discovered through Unwrap() error (stdlib convention), with a
// fallback to the legacy Cause() error accessor so chains built with older
// wrapping libraries render fully. Multi-error trees (Unwrap() []error) are
// not expanded; the chain is a singly-linked sequence.
//
// # Format Contract
//
// The output is byte-stable across calls:
//   - no cause:    the error's own Error() text, nothing else
//   - with causes: Error(), then "\nCaused by:", then one "\n  -> <Error()>"
//     line per cause, outermost cause first, root cause last
//   - never a trailing newline
//
// Each line carries exactly one node's own message; a cause's own cause is
// never expanded inline. Errors whose Error() already concatenates their
// cause text (the fmt.Errorf("...: %w", err) convention) will show that text
// again on the cause lines; that is the caller's display contract.
//
// # Lifetime & Concurrency
//
// Chain holds a borrowed reference: construct it, render it, drop it. It
// performs a read-only traversal and never mutates the wrapped error, so the
// same error value may be wrapped and rendered concurrently provided its own
// Error/Unwrap methods are safe for concurrent reads.
//
// # Traversal Bound
//
// A cause chain is expected to be finite and acyclic. Traversal stops after a
// generous fixed number of links, so a chain that accidentally cycles
// terminates with truncated output; finite chains are unaffected.
package errchain
