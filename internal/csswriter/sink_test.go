package csswriter

import (
	"errors"
	"strings"
	"testing"

	"github.com/cssgo/cssgo/internal/csstoken"
)

var errWriteFailed = errors.New("write failed")

func identCursor(source string, offset, length uint32) csstoken.Cursor {
	return csstoken.NewCursor(csstoken.SourceOffset(offset), csstoken.Token{Kind: csstoken.Ident, Length: length})
}

func TestVecSinkPassthroughNoSeparatorNeeded(t *testing.T) {
	source := "a,b"
	sink := NewVecSink()
	sink.Append(identCursor(source, 0, 1))
	sink.Append(csstoken.NewCursor(1, csstoken.Token{Kind: csstoken.Comma, Length: 1}))
	sink.Append(identCursor(source, 2, 1))
	if got := sink.String(source); got != "a,b" {
		t.Fatalf("String() = %q, want %q", got, "a,b")
	}
}

func TestVecSinkInjectsSeparatorBetweenIdents(t *testing.T) {
	// Two adjacent Ident cursors from disjoint source spans ("a" and "b")
	// would re-tokenize as a single identifier if concatenated directly; the
	// sink must inject a synthetic space.
	source := "a b"
	sink := NewVecSink()
	sink.Append(identCursor(source, 0, 1))
	sink.Append(identCursor(source, 2, 1))
	if got := sink.String(source); got != "a b" {
		t.Fatalf("String() = %q, want %q (separator injected)", got, "a b")
	}
	if len(sink.Cursors) != 3 {
		t.Fatalf("expected 3 cursors (ident, dummy space, ident), got %d", len(sink.Cursors))
	}
	if !sink.Cursors[1].Offset.IsDummy() {
		t.Fatal("expected the injected separator to be a dummy cursor")
	}
}

func TestVecSinkNoSeparatorBeforeFirstCursor(t *testing.T) {
	sink := NewVecSink()
	sink.Append(identCursor("a", 0, 1))
	if len(sink.Cursors) != 1 {
		t.Fatalf("expected exactly 1 cursor for the first Append, got %d", len(sink.Cursors))
	}
}

func TestWriterSinkStreamsAndInjectsSeparator(t *testing.T) {
	source := "a b"
	var buf strings.Builder
	sink := NewWriterSink(&buf, source)
	sink.Append(identCursor(source, 0, 1))
	sink.Append(identCursor(source, 2, 1))
	if sink.Err != nil {
		t.Fatalf("unexpected error: %v", sink.Err)
	}
	if got := buf.String(); got != "a b" {
		t.Fatalf("buf.String() = %q, want %q", got, "a b")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWriteFailed
}

func TestWriterSinkLatchesErrorAndStopsWriting(t *testing.T) {
	sink := NewWriterSink(failingWriter{}, "ab")
	sink.Append(identCursor("ab", 0, 1))
	if sink.Err == nil {
		t.Fatal("expected the first failing write to latch an error")
	}
	// A further Append must be a no-op rather than panicking or writing.
	sink.Append(identCursor("ab", 1, 1))
	if sink.Err == nil {
		t.Fatal("error should remain latched")
	}
}
