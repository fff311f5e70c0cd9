package cssparser

import (
	"testing"

	"github.com/cssgo/cssgo/internal/csstoken"
)

func TestParserNextSkipsTrivia(t *testing.T) {
	p := New("a /* c */ b")
	first := p.Next()
	if first.Token.Kind != csstoken.Ident {
		t.Fatalf("first.Token.Kind = %v, want Ident", first.Token.Kind)
	}
	second := p.Next()
	if second.Token.Kind != csstoken.Ident {
		t.Fatalf("second.Token.Kind = %v, want Ident", second.Token.Kind)
	}
	if p.ParseStr(second) != "b" {
		t.Fatalf("second lexeme = %q, want %q", p.ParseStr(second), "b")
	}
	trivia := p.Trivia()
	if len(trivia) != 3 { // space, comment, space
		t.Fatalf("Trivia() has %d entries, want 3: %+v", len(trivia), trivia)
	}
	if trivia[1].Token.Kind != csstoken.Comment {
		t.Fatalf("trivia[1].Token.Kind = %v, want Comment", trivia[1].Token.Kind)
	}
}

func TestParserPeekNDoesNotConsume(t *testing.T) {
	p := New("a b c")
	first := p.PeekN(0)
	second := p.PeekN(1)
	third := p.PeekN(2)
	if p.ParseStr(first) != "a" || p.ParseStr(second) != "b" || p.ParseStr(third) != "c" {
		t.Fatalf("PeekN mismatch: %q %q %q", p.ParseStr(first), p.ParseStr(second), p.ParseStr(third))
	}
	// Peeking must not have consumed anything, nor recorded trivia.
	if len(p.Trivia()) != 0 {
		t.Fatalf("PeekN recorded trivia: %+v", p.Trivia())
	}
	again := p.Next()
	if p.ParseStr(again) != "a" {
		t.Fatalf("after PeekN, Next() = %q, want %q (first token still unconsumed)", p.ParseStr(again), "a")
	}
}

func TestParserAtEndAndNextIsStop(t *testing.T) {
	p := New("  ")
	if !p.AtEnd() {
		t.Fatal("an all-whitespace source should report AtEnd()")
	}

	p2 := New(";")
	prev := p2.SetStop(csstoken.New(csstoken.Semicolon))
	defer p2.SetStop(prev)
	if !p2.NextIsStop() {
		t.Fatal("expected NextIsStop() to report true when the stop set contains the upcoming kind")
	}
}

func TestParserCheckpointRewindRestoresEverything(t *testing.T) {
	p := New("a b c")
	p.Next() // consume "a"

	cp := p.Checkpoint()
	p.Next() // consume "b"
	p.Next() // consume "c"

	p.Rewind(cp)
	again := p.Next()
	if p.ParseStr(again) != "b" {
		t.Fatalf("after Rewind, Next() = %q, want %q", p.ParseStr(again), "b")
	}
}

func TestTryParseRestoresStateOnFailure(t *testing.T) {
	p := New("not-a-declaration-body;")
	before := p.Checkpoint()

	_, err := TryParse(p, (*Parser).parseDeclarationStrict)
	if err == nil {
		t.Fatal("expected parseDeclarationStrict to fail on an ident with no colon")
	}

	after := p.Checkpoint()
	if before != after {
		t.Fatalf("TryParse left the parser in a different state after failure: before=%+v after=%+v", before, after)
	}
	// The parser must still be positioned at the very start: re-reading the
	// first token should reproduce the same ident.
	tok := p.Next()
	if p.ParseStr(tok) != "not-a-declaration-body" {
		t.Fatalf("after failed TryParse, Next() = %q, want the original first ident intact", p.ParseStr(tok))
	}
}

func TestTryParseCommitsStateOnSuccess(t *testing.T) {
	p := New("color:red;rest")
	decl, err := TryParse(p, (*Parser).parseDeclarationStrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ParseStr(decl.Name) != "color" {
		t.Fatalf("decl.Name = %q, want %q", p.ParseStr(decl.Name), "color")
	}
	// The cursor should now sit right after the parsed declaration's value,
	// before the semicolon.
	next := p.PeekNext()
	if next.Token.Kind != csstoken.Semicolon {
		t.Fatalf("PeekNext().Kind = %v, want Semicolon", next.Token.Kind)
	}
}

func TestParseIfPeekSkipsWithoutConsumingWhenPeekFails(t *testing.T) {
	p := New("foo")
	result, err := ParseIfPeek(p, func(p *Parser) bool {
		return p.PeekNext().Token.Kind == csstoken.AtKeyword
	}, func(p *Parser) (csstoken.Cursor, error) {
		return p.Next(), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result when peek fails, got %+v", result)
	}
	tok := p.Next()
	if p.ParseStr(tok) != "foo" {
		t.Fatal("ParseIfPeek with a failing peek must not have consumed the token")
	}
}

func TestEqIgnoreAsciiCase(t *testing.T) {
	p := New("IMPORTANT")
	cur := p.Next()
	if !p.EqIgnoreAsciiCase(cur, "important") {
		t.Fatal("EqIgnoreAsciiCase should match regardless of case")
	}
	if p.EqIgnoreAsciiCase(cur, "unimportant") {
		t.Fatal("EqIgnoreAsciiCase should not match an unrelated string")
	}
}

func TestParseAtomLowerFoldsCase(t *testing.T) {
	p := New("MEDIA")
	cur := p.Next()
	atom := p.ParseAtomLower(cur)
	if atom.String() != "media" {
		t.Fatalf("ParseAtomLower(%q) = %q, want %q", p.ParseStr(cur), atom.String(), "media")
	}
}

func TestEqAtomAgreesWithEqIgnoreAsciiCase(t *testing.T) {
	p := New("IMPORTANT")
	cur := p.Next()
	if !p.EqAtom(cur, "important") {
		t.Fatal("EqAtom should match regardless of case, like EqIgnoreAsciiCase")
	}
	if p.EqAtom(cur, "unimportant") {
		t.Fatal("EqAtom should not match an unrelated string")
	}
}

func TestEqAtomStr(t *testing.T) {
	if !EqAtomStr("Charset", "charset") {
		t.Fatal("EqAtomStr should match regardless of case")
	}
	if EqAtomStr("charset", "import") {
		t.Fatal("EqAtomStr should not match an unrelated string")
	}
}
