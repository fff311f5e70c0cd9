package csstoken

import "fmt"

// Span is a half-open [Start, End) byte range into a source string.
type Span struct {
	Start SourceOffset
	End   SourceOffset
}

func (s Span) String() string {
	return fmt.Sprintf("[%d..%d)", s.Start, s.End)
}

// NewSpan constructs a Span, requiring start <= end.
func NewSpan(start, end SourceOffset) Span {
	if start > end {
		panic("csstoken: span start after end")
	}
	return Span{Start: start, End: end}
}

// DummySpan is a span with no real location, used for synthetic nodes.
func DummySpan() Span {
	return Span{Start: DummyOffset, End: DummyOffset}
}

// IsDummy reports whether this is the dummy span.
func (s Span) IsDummy() bool {
	return s.Start == DummyOffset && s.End == DummyOffset
}

// WithEnd returns a copy of s extended (or shrunk) to a new end offset.
func (s Span) WithEnd(end SourceOffset) Span {
	if s.Start > end {
		panic("csstoken: span start after end")
	}
	return Span{Start: s.Start, End: end}
}

// Size returns the number of bytes the span covers.
func (s Span) Size() uint32 {
	return uint32(s.End) - uint32(s.Start)
}

// Union returns the smallest span that covers both s and other.
func (s Span) Union(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Contents returns a SpanContents view of this span over source.
func (s Span) Contents(source string) SpanContents {
	return SpanContents{span: s, source: source}
}

// SpanContents pairs a Span with the source string it indexes into, so that
// the substring and line/column position can be computed lazily.
type SpanContents struct {
	span   Span
	source string
}

// Text returns the substring the span covers.
func (c SpanContents) Text() string {
	return c.source[c.span.Start:c.span.End]
}

// Size returns the byte length of the span.
func (c SpanContents) Size() uint32 {
	return c.span.Size()
}

// LineAndColumn scans the source from the beginning and returns the
// (0-indexed) line and column the span starts at. This is O(n) in the
// offset; it exists for diagnostics, which are rare relative to parsing, not
// for anything on a hot path.
func (c SpanContents) LineAndColumn() (line, column uint32) {
	offset := uint32(c.span.Start)
	for i, r := range c.source {
		if uint32(i) >= offset {
			break
		}
		if r == '\n' {
			line++
			column = 0
		} else {
			column++
		}
	}
	return line, column
}
