package csstoken

import "testing"

func TestKindSetMembership(t *testing.T) {
	for k := Kind(0); k < numKinds; k++ {
		s := New(k)
		if !s.Contains(k) {
			t.Fatalf("KindSet.New(%v) does not contain %v", k, k)
		}
		for other := Kind(0); other < numKinds; other++ {
			if other == k {
				continue
			}
			if uint8(other)%32 == uint8(k)%32 {
				continue
			}
			if s.Contains(other) {
				t.Fatalf("KindSet.New(%v) unexpectedly contains %v", k, other)
			}
		}
	}
}

func TestKindSetUnion(t *testing.T) {
	s := New(Ident).Union(New(Function))
	if !s.Contains(Ident) || !s.Contains(Function) {
		t.Fatalf("union missing a member: %#v", s)
	}
	if s.Contains(Comma) {
		t.Fatalf("union contains unrelated kind")
	}
}

func TestKindSetAdd(t *testing.T) {
	s := NoneKind.Add(Whitespace).Add(Comment)
	if s != Trivia {
		t.Fatalf("Add-built set %#v does not equal Trivia %#v", s, Trivia)
	}
}

func TestWellKnownStopSets(t *testing.T) {
	if !LeftCurlyRightParenCommaOrSemiColon.Contains(Comma) {
		t.Fatal("expected LeftCurlyRightParenCommaOrSemiColon to contain Comma")
	}
	if LeftCurlyRightParenCommaOrSemiColon.Contains(Ident) {
		t.Fatal("did not expect LeftCurlyRightParenCommaOrSemiColon to contain Ident")
	}
}
