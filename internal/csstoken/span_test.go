package csstoken

import (
	"testing"
	"unicode/utf8"
)

func TestSpanContentsText(t *testing.T) {
	source := "body { color: red }"
	span := NewSpan(0, 4)
	if got := span.Contents(source).Text(); got != "body" {
		t.Fatalf("Text() = %q, want %q", got, "body")
	}
}

func TestSpanUnion(t *testing.T) {
	a := NewSpan(2, 5)
	b := NewSpan(10, 12)
	u := a.Union(b)
	if u.Start != 2 || u.End != 12 {
		t.Fatalf("Union() = %v, want [2..12)", u)
	}
}

func TestSpanLineAndColumn(t *testing.T) {
	source := "a {\n  color: réd;\n}"
	// "réd" contains a multi-byte rune (é); the offset of "d" must still
	// resolve to the right column when walked rune-by-rune.
	idx := len("a {\n  color: ré")
	line, col := NewSpan(SourceOffset(idx), SourceOffset(idx+1)).Contents(source).LineAndColumn()
	if line != 1 {
		t.Fatalf("line = %d, want 1", line)
	}
	if want := utf8.RuneCountInString("  color: ré"); col != uint32(want) {
		t.Fatalf("column = %d, want %d", col, want)
	}
}

func TestSpanIsDummy(t *testing.T) {
	if !DummySpan().IsDummy() {
		t.Fatal("DummySpan() should be dummy")
	}
	if NewSpan(0, 1).IsDummy() {
		t.Fatal("a real span should not be dummy")
	}
}
