// chain.go — the cause-chain renderer.
//
// Behavior:
//
//   Render/String/%v → the wrapped error's own message, then one line per
//   cause in chain order:
//     <Error()>
//     Caused by:
//       -> <cause-1 Error()>
//       -> <cause-2 Error()>
//
// Contract:
//   - No cause → exactly the error's own Error() text, nothing appended.
//   - No trailing newline, ever.
//   - Each line shows exactly one node's own Error() text; a cause's own
//     cause is never expanded inline.
//   - Sink failures from Render propagate to the caller unmodified.
package errchain

import (
	"fmt"
	"io"
	"strings"
)

// Chain is a transient formatter over one borrowed error reference. It does
// no work at construction, holds no state beyond the reference, and never
// mutates the wrapped error; rendering is read-only and repeatable with
// identical output.
//
// The zero Chain (and New(nil)) renders as the empty string.
type Chain struct {
	err error
}

// New wraps err for rendering. Any error is accepted, including nil and
// errors with no cause; no validation or traversal happens here.
func New(err error) Chain { return Chain{err: err} }

// Render writes the formatted chain to w. The only failure mode is a write
// error from w itself, which is returned unmodified; formatting over
// already-available data cannot fail.
func (c Chain) Render(w io.Writer) error {
	if c.err == nil {
		return nil
	}
	if _, err := io.WriteString(w, c.err.Error()); err != nil {
		return err
	}
	headed := false
	depth := 0
	for cause := causeOf(c.err); cause != nil && depth < maxDepth; cause = causeOf(cause) {
		if !headed {
			headed = true
			if _, err := io.WriteString(w, "\nCaused by:"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n  -> "); err != nil {
			return err
		}
		if _, err := io.WriteString(w, cause.Error()); err != nil {
			return err
		}
		depth++
	}
	return nil
}

// String returns the formatted chain as an owned string.
// Chain therefore satisfies fmt.Stringer.
func (c Chain) String() string {
	var sb strings.Builder
	// strings.Builder writes cannot fail.
	_ = c.Render(&sb)
	return sb.String()
}

// Format implements fmt.Formatter.
//   %v, %s → the rendered chain.
//   %q     → the rendered chain, quoted.
// Unknown verbs produce the fmt-style %!x(...) diagnostic.
func (c Chain) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		// ignore write errors in formatting paths
		_ = c.Render(s)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", c.String())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%T)", verb, c)
	}
}
