package csswriter

import (
	"io"

	"github.com/cssgo/cssgo/internal/csstoken"
)

// WriterSink wraps any io.Writer and streams cursors straight to it as
// text, applying the same separator discipline as VecSink but without
// buffering the cursor sequence itself. Once the writer returns an error
// that error is latched in Err and every subsequent Append becomes a no-op,
// mirroring the teacher's printer, which stops doing work once output
// can't succeed.
type WriterSink struct {
	w      io.Writer
	source string
	last   *csstoken.Token
	Err    error
}

// NewWriterSink returns a sink that writes lexemes sliced out of source
// into w.
func NewWriterSink(w io.Writer, source string) *WriterSink {
	return &WriterSink{w: w, source: source}
}

// Append implements CursorSink.
func (s *WriterSink) Append(c csstoken.Cursor) {
	if s.Err != nil {
		return
	}
	if needsSeparator(s.last, c.Token) {
		if _, err := io.WriteString(s.w, " "); err != nil {
			s.Err = err
			return
		}
	}
	if !c.Offset.IsDummy() {
		if _, err := io.WriteString(s.w, c.StrSlice(s.source)); err != nil {
			s.Err = err
			return
		}
	}
	tok := c.Token
	s.last = &tok
}
