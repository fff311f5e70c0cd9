// Package csstoken defines the smallest units the rest of the toolkit is built
// from: byte offsets into CSS source text, spans over those offsets, the
// lexical Kind enumeration, and the Token/Cursor pair that the lexer and
// parser pass around. Nothing in this package allocates heap memory for a
// lexeme; a Cursor plus the original source string is the only "string" that
// ever exists.
package csstoken

import "math"

// SourceOffset is a byte index into a source string. It never refers to a
// byte in the middle of a multi-byte UTF-8 sequence.
type SourceOffset uint32

// DummyOffset marks "no location". It is used by synthetic cursors (for
// example the whitespace a CursorSink injects between two tokens that would
// otherwise re-tokenize together).
const DummyOffset SourceOffset = math.MaxUint32

// IsDummy reports whether this offset is the DummyOffset sentinel.
func (o SourceOffset) IsDummy() bool {
	return o == DummyOffset
}

// AsSpan builds the Span a Token produces when read starting at this offset.
func (o SourceOffset) AsSpan(t Token) Span {
	return NewSpan(o, SourceOffset(uint32(o)+t.Length))
}

// AsCursor pairs this offset with a Token to form a Cursor.
func (o SourceOffset) AsCursor(t Token) Cursor {
	return Cursor{Offset: o, Token: t}
}
