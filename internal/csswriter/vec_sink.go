package csswriter

import "github.com/cssgo/cssgo/internal/csstoken"

// VecSink appends cursors to an in-memory slice. It is the sink of choice
// when the caller wants the reconstructed cursor stream itself (for
// example to re-feed it to a Lexer and check the round-trip property),
// rather than straight-to-bytes output.
type VecSink struct {
	Cursors []csstoken.Cursor
	last    *csstoken.Token
}

// NewVecSink returns an empty VecSink.
func NewVecSink() *VecSink {
	return &VecSink{}
}

// Append implements CursorSink.
func (s *VecSink) Append(c csstoken.Cursor) {
	if needsSeparator(s.last, c.Token) {
		s.Cursors = append(s.Cursors, dummySpace)
	}
	s.Cursors = append(s.Cursors, c)
	tok := c.Token
	s.last = &tok
}

// String reconstructs the text the sink's cursors represent, given the
// original source string (dummy cursors render as a single space).
func (s *VecSink) String(source string) string {
	var b []byte
	for _, c := range s.Cursors {
		if c.Offset.IsDummy() {
			b = append(b, ' ')
			continue
		}
		b = append(b, c.StrSlice(source)...)
	}
	return string(b)
}
