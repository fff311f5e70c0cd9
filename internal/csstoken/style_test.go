package csstoken

import "testing"

func TestQuoteStyleByte(t *testing.T) {
	if QuoteSingle.Byte() != '\'' {
		t.Fatal("QuoteSingle.Byte() should be '\\''")
	}
	if QuoteDouble.Byte() != '"' {
		t.Fatal(`QuoteDouble.Byte() should be '"'`)
	}
	if QuoteNone.Byte() != 0 {
		t.Fatal("QuoteNone.Byte() should be 0")
	}
	if QuoteNone.String() != "" {
		t.Fatal("QuoteNone.String() should be empty")
	}
}

func TestClassifyBlockComment(t *testing.T) {
	cases := []struct {
		first byte
		ok    bool
		want  CommentStyle
	}{
		{'*', true, CommentBlockStar},
		{'!', true, CommentBlockBang},
		{'#', true, CommentBlockPound},
		{'-', true, CommentBlockHeading},
		{'=', true, CommentBlockHeading},
		{'x', true, CommentBlock},
		{0, false, CommentBlock},
	}
	for _, c := range cases {
		if got := ClassifyBlockComment(c.first, c.ok); got != c.want {
			t.Errorf("ClassifyBlockComment(%q, %v) = %v, want %v", c.first, c.ok, got, c.want)
		}
	}
}

func TestClassifySingleLineComment(t *testing.T) {
	cases := []struct {
		first byte
		ok    bool
		want  CommentStyle
	}{
		{'*', true, CommentSingleStar},
		{'!', true, CommentSingleBang},
		{'x', true, CommentSingle},
		{0, false, CommentSingle},
	}
	for _, c := range cases {
		if got := ClassifySingleLineComment(c.first, c.ok); got != c.want {
			t.Errorf("ClassifySingleLineComment(%q, %v) = %v, want %v", c.first, c.ok, got, c.want)
		}
	}
}

func TestWhitespaceStyleWithByte(t *testing.T) {
	var w WhitespaceStyle
	w = w.WithByte(' ')
	w = w.WithByte('\t')
	w = w.WithByte('\n')
	if !w.Has(WhitespaceSpace) || !w.Has(WhitespaceTab) || !w.Has(WhitespaceNewline) {
		t.Fatalf("WhitespaceStyle %#v missing an expected bit", w)
	}
	if WhitespaceStyle(0).WithByte('x') != 0 {
		t.Fatal("an unrecognized byte should not set any bit")
	}
}
