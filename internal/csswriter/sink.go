// Package csswriter implements the lossless round-trip half of the core:
// given the cursors an AST node was built from, re-emit them (plus any
// separators the emission discipline requires) to reconstruct source text.
package csswriter

import "github.com/cssgo/cssgo/internal/csstoken"

// CursorSink is an append-only consumer of cursors. Every Node.ToCursors
// implementation pushes its own cursors (and recurses into children) onto
// whatever sink the caller provides; the sink decides whether that becomes
// an in-memory slice (VecSink) or bytes written straight to an io.Writer
// (WriterSink).
//
// Implementations must apply the separator discipline themselves: before
// appending a cursor, check whether the previously-appended cursor's token
// NeedsSeparatorFor the incoming one, and if so inject a single space first.
// Centralizing that check in the sink (rather than in every node) is what
// keeps arbitrary AST node compositions safe to concatenate.
type CursorSink interface {
	// Append adds a single cursor to the sink, inserting a disambiguating
	// whitespace cursor first if required.
	Append(c csstoken.Cursor)
}

// dummySpace is the synthetic whitespace cursor injected between two
// tokens that would otherwise re-tokenize together.
var dummySpace = csstoken.DummyCursor(csstoken.Token{
	Kind:            csstoken.Whitespace,
	Length:          1,
	WhitespaceStyle: csstoken.WhitespaceSpace,
})

// needsSeparator centralizes the "was there a previous token, and does it
// need a separator before next" check shared by every CursorSink.
func needsSeparator(prev *csstoken.Token, next csstoken.Token) bool {
	return prev != nil && prev.NeedsSeparatorFor(next)
}
