package cssparser

import "testing"

func TestRequireNoPreludeAcceptsEmptyPrelude(t *testing.T) {
	p := New("@charset;")
	rule, err := p.ParseAtRule("")
	if err != nil {
		t.Fatalf("unexpected error parsing the at-rule: %v", err)
	}
	if err := RequireNoPrelude(p, rule); err != nil {
		t.Fatalf("RequireNoPrelude on an empty prelude should succeed, got %v", err)
	}
}

func TestRequireNoPreludeRejectsNonEmptyPrelude(t *testing.T) {
	p := New("@charset foo;")
	rule, err := p.ParseAtRule("")
	if err != nil {
		t.Fatalf("unexpected error parsing the at-rule: %v", err)
	}
	if err := RequireNoPrelude(p, rule); err == nil {
		t.Fatal("expected RequireNoPrelude to reject a non-empty prelude")
	}
	if len(p.Errors()) != 1 {
		t.Fatalf("expected RequireNoPrelude to record one error, got %d", len(p.Errors()))
	}
}

func TestRequireNoBlockAcceptsSemicolonTerminated(t *testing.T) {
	p := New("@charset;")
	rule, err := p.ParseAtRule("")
	if err != nil {
		t.Fatalf("unexpected error parsing the at-rule: %v", err)
	}
	if err := RequireNoBlock(p, rule); err != nil {
		t.Fatalf("RequireNoBlock with no block should succeed, got %v", err)
	}
}

func TestRequireNoBlockRejectsBlock(t *testing.T) {
	p := New("@page{margin:0}")
	rule, err := p.ParseAtRule("")
	if err != nil {
		t.Fatalf("unexpected error parsing the at-rule: %v", err)
	}
	if err := RequireNoBlock(p, rule); err == nil {
		t.Fatal("expected RequireNoBlock to reject an at-rule with a block")
	}
}
