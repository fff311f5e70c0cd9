package csstoken

// Cursor is a pointer into the source: an offset plus the Token read
// starting there. It is the smallest unit of lookahead passed around the
// lexer and parser, and the unit CursorSink re-emits to losslessly rebuild
// source text.
type Cursor struct {
	Offset SourceOffset
	Token  Token
}

// NewCursor pairs an offset with a token.
func NewCursor(offset SourceOffset, token Token) Cursor {
	return Cursor{Offset: offset, Token: token}
}

// DummyCursor returns a cursor with no real location, carrying token. Used
// to synthesize the whitespace cursor a CursorSink injects between two
// tokens that need a separator.
func DummyCursor(token Token) Cursor {
	return Cursor{Offset: DummyOffset, Token: token}
}

// Span returns the span this cursor's token covers.
func (c Cursor) Span() Span {
	return c.Offset.AsSpan(c.Token)
}

// StrSlice returns the lexeme this cursor refers to, borrowed from source.
// It returns "" for a dummy cursor (nothing was read from source for it).
func (c Cursor) StrSlice(source string) string {
	if c.Offset.IsDummy() {
		return ""
	}
	span := c.Span()
	return source[span.Start:span.End]
}

// Kind is a convenience accessor for c.Token.Kind.
func (c Cursor) Kind() Kind {
	return c.Token.Kind
}
