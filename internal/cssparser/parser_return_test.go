package cssparser

import (
	"testing"

	"github.com/cssgo/cssgo/internal/csstoken"
	"github.com/cssgo/cssgo/internal/csswriter"
)

func TestParseWithoutTriviaDropsWhitespace(t *testing.T) {
	source := `body { color: black }`
	ret := Parse(source, 0, false)
	if ret.Output == nil {
		t.Fatal("expected a non-nil StyleSheet")
	}
	sink := csswriter.NewVecSink()
	ret.ToCursors(sink)
	got := sink.String(source)
	// Without trivia reinsertion, only the mandatory NeedsSeparatorFor
	// separators survive; the original spacing is lost.
	if got == source {
		t.Fatal("expected the trivia-free round trip to differ from source (original whitespace dropped)")
	}
}

func TestParseWithTriviaRoundTripsExactly(t *testing.T) {
	for _, source := range []string{
		`body { color: black }`,
		`.a,.b { }`,
		`a{color:red !IMPORTANT}`,
		`@charset "utf-8";`,
		`@media (min-width:0\0){a{b:c}}`,
		`/* leading */ a { color : red ; } /* trailing */`,
	} {
		ret := Parse(source, 0, true)
		sink := csswriter.NewVecSink()
		ret.ToCursors(sink)
		if got := sink.String(source); got != source {
			t.Errorf("round trip of %q = %q, want identical", source, got)
		}
	}
}

func TestParseWithTriviaOnNilOutputIsNoOp(t *testing.T) {
	ret := ParserReturn{Output: nil, WithTrivia: true}
	sink := csswriter.NewVecSink()
	ret.ToCursors(sink) // must not panic
	if len(sink.Cursors) != 0 {
		t.Fatalf("expected no cursors for a nil Output, got %d", len(sink.Cursors))
	}
}

func TestMergeCursorsByOffsetInterleavesInOrder(t *testing.T) {
	ident := func(offset uint32) csstoken.Cursor {
		return csstoken.NewCursor(csstoken.SourceOffset(offset), csstoken.Token{Kind: csstoken.Ident, Length: 1})
	}
	whitespace := func(offset uint32) csstoken.Cursor {
		return csstoken.NewCursor(csstoken.SourceOffset(offset), csstoken.Token{Kind: csstoken.Whitespace, Length: 1})
	}
	a := []csstoken.Cursor{ident(0), ident(2)}
	b := []csstoken.Cursor{whitespace(1)}
	merged := mergeCursorsByOffset(a, b)
	if len(merged) != 3 {
		t.Fatalf("len(merged) = %d, want 3", len(merged))
	}
	if merged[0].Offset != 0 || merged[1].Offset != 1 || merged[2].Offset != 2 {
		t.Fatalf("merged offsets = %v, %v, %v, want 0, 1, 2", merged[0].Offset, merged[1].Offset, merged[2].Offset)
	}
}

func TestMergeCursorsByOffsetKeepsDummiesInPlace(t *testing.T) {
	ident := func(offset uint32) csstoken.Cursor {
		return csstoken.NewCursor(csstoken.SourceOffset(offset), csstoken.Token{Kind: csstoken.Ident, Length: 1})
	}
	dummy := csstoken.DummyCursor(csstoken.Token{Kind: csstoken.Whitespace, Length: 1})
	a := []csstoken.Cursor{ident(0), dummy, ident(1)}
	var b []csstoken.Cursor
	merged := mergeCursorsByOffset(a, b)
	if len(merged) != 3 || !merged[1].Offset.IsDummy() {
		t.Fatalf("expected the dummy cursor to stay in its relative position: %+v", merged)
	}
}
