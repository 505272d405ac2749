// causes.go — traversal over the single-link cause chain.
//
// Scope (tiny core):
//   - One cause accessor shared with the renderer: Unwrap() error first,
//     legacy Cause() error as a fallback.
//   - Chain-order helpers: Causes, Root, Walk.
//   - No policy, no logging — just correct, minimal utilities.
//
// Design notes:
//   - errors.Unwrap only calls Unwrap() error; pre-1.13 wrapping libraries
//     exposed Cause() error instead, and both still circulate. causeOf
//     checks Unwrap first so stdlib semantics win when a type has both.
//   - Multi-error containers (Unwrap() []error) are NOT expanded: the chain
//     model is a singly-linked sequence, matching errors.Unwrap itself.
//   - Traversal is capped at maxDepth links so a chain that accidentally
//     cycles terminates instead of looping; finite chains never hit the cap.
package errchain

// single/legacy cause interfaces (stdlib- and pkg/errors-compatible)
type singleUnwrapper interface{ Unwrap() error }
type causer interface{ Cause() error }

// maxDepth bounds every chain traversal in this package.
const maxDepth = 1 << 12

// causeOf returns err's direct cause, or nil at the root. When a type
// implements both accessors, Unwrap() wins (including a nil result).
func causeOf(err error) error {
	if err == nil {
		return nil
	}
	if u, ok := err.(singleUnwrapper); ok {
		return u.Unwrap()
	}
	if c, ok := err.(causer); ok {
		return c.Cause()
	}
	return nil
}

// Causes returns the errors strictly below err in chain order: the direct
// cause first, the root cause last. It returns nil for a nil err or an err
// with no cause.
func Causes(err error) []error {
	var out []error
	depth := 0
	for c := causeOf(err); c != nil && depth < maxDepth; c = causeOf(c) {
		out = append(out, c)
		depth++
	}
	return out
}

// Root returns the last link of the chain: the error whose cause accessor
// yields nothing. A causeless err is its own root. Nil-safe.
func Root(err error) error {
	if err == nil {
		return nil
	}
	depth := 0
	for {
		c := causeOf(err)
		if c == nil || depth >= maxDepth {
			return err
		}
		err = c
		depth++
	}
}

// Walk visits err and then each cause in chain order. If visit returns
// false, traversal stops early. Nil err or visit is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	depth := 0
	for n := err; n != nil && depth <= maxDepth; n = causeOf(n) {
		if !visit(n) {
			return
		}
		depth++
	}
}
