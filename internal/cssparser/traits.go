package cssparser

import (
	"github.com/cssgo/cssgo/internal/csserr"
	"github.com/cssgo/cssgo/internal/csstoken"
)

// Peek is implemented by a syntax node that can answer "might a T start
// parsing at cursor c?" without consuming anything or mutating the parser
// — the look-before-you-leap half of the Peek/Build pair ported from
// peek.rs/build.rs. Neither method depends on receiver state (the crate's
// traits take no &self either); implementations are called on a zero
// value purely to select the right method set.
type Peek interface {
	Peek(p *Parser, c csstoken.Cursor) bool
}

// Builder is implemented by a syntax node that can be constructed from a
// single already-consumed cursor, infallibly — build.rs's Build trait. It
// only fits nodes whose entire grammar is "one cursor, no lookahead, no
// way to fail"; TokenValue is the one node in this package that qualifies,
// which is why BangImportant (two cursors) implements Peek but not
// Builder.
type Builder[T any] interface {
	Build(p *Parser, c csstoken.Cursor) T
}

// Parse constructs a T by peeking the next cursor and, if it might begin a
// T, consuming it and delegating to Build. This is the Go rendering of
// parse.rs's blanket "impl<T: Peek + Build> Parse for T": Rust gets it for
// free from the trait bound; Go needs the explicit function, parameterized
// over a T that is both Peek and Builder[T].
func Parse[T interface {
	Peek
	Builder[T]
}](p *Parser) (T, error) {
	var zero T
	c := p.PeekNext()
	if !zero.Peek(p, c) {
		p.Next()
		err := csserr.Error{Kind: csserr.Unexpected, Span: c.Span(), Token: c.Token}
		return zero, err
	}
	c = p.Next()
	return zero.Build(p, c), nil
}

// Peek implements Peek: a TokenValue might start at any cursor (it wraps
// whatever token is there), matching Rust's default PEEK_KINDSET::ANY.
func (TokenValue) Peek(p *Parser, c csstoken.Cursor) bool {
	return true
}

// Build implements Builder[TokenValue]: a TokenValue is just its cursor.
func (TokenValue) Build(p *Parser, c csstoken.Cursor) TokenValue {
	return TokenValue{Cursor: c}
}

// Peek implements Peek for BangImportant, mirroring bang_important.rs: c
// itself must be the "!" delim, and the following non-skipped cursor must
// be an Ident that case-insensitively spells "important". BangImportant
// has no Build, since it always needs two cursors — callers use Peek
// followed by a dedicated two-token parse, not the generic Parse.
func (BangImportant) Peek(p *Parser, c csstoken.Cursor) bool {
	if c.Token.Kind != csstoken.Delim || c.Token.DelimChar != '!' {
		return false
	}
	next := p.PeekN(1)
	return next.Token.Kind == csstoken.Ident && p.EqAtom(next, "important")
}

// Peek implements Peek for Declaration, mirroring declaration.rs: c must
// be an Ident and the cursor after it a Colon. parseDeclarationOrQualifiedRule
// uses this to skip the speculative declaration attempt entirely when the
// upcoming tokens plainly can't be one (a selector prelude, say), rather
// than paying for a checkpoint/rewind that was always going to fail.
func (Declaration) Peek(p *Parser, c csstoken.Cursor) bool {
	return c.Token.Kind == csstoken.Ident && p.PeekN(1).Token.Kind == csstoken.Colon
}
