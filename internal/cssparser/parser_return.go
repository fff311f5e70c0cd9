package cssparser

import (
	"github.com/cssgo/cssgo/internal/csserr"
	"github.com/cssgo/cssgo/internal/csslexer"
	"github.com/cssgo/cssgo/internal/csstoken"
	"github.com/cssgo/cssgo/internal/csswriter"
)

// ParserReturn is the top-level parse result (spec.md §4.6, §6.3): the
// parsed output (Parse always sets it, possibly partial when errors were
// recorded; ToCursors emits nothing for a nil Output), the source text it was parsed
// from, every recoverable error, every trivia cursor skipped along the
// way, and whether ToCursors should interleave that trivia back in.
type ParserReturn struct {
	Output     *StyleSheet
	SourceText string
	Errors     csserr.Errors
	Trivia     []csstoken.Cursor
	WithTrivia bool
}

// Parse runs the whole StyleSheet production over source and returns the
// ParserReturn record. withTrivia controls whether a later ToCursors call
// reinserts the skipped whitespace/comment cursors.
func Parse(source string, features csslexer.Feature, withTrivia bool) ParserReturn {
	p := NewWithFeatures(source, features)
	sheet, _ := p.ParseStyleSheet()
	return ParserReturn{
		Output:     sheet,
		SourceText: source,
		Errors:     p.Errors(),
		Trivia:     p.Trivia(),
		WithTrivia: withTrivia,
	}
}

// ToCursors re-emits r.Output's cursors into sink. When WithTrivia is set,
// the trivia this parse skipped is merged back in by source offset so the
// output round-trips the original whitespace/comments exactly instead of
// only the single synthetic separator NeedsSeparatorFor would otherwise
// inject.
func (r ParserReturn) ToCursors(sink csswriter.CursorSink) {
	if r.Output == nil {
		return
	}
	if !r.WithTrivia || len(r.Trivia) == 0 {
		r.Output.ToCursors(sink)
		return
	}

	captured := csswriter.NewVecSink()
	r.Output.ToCursors(captured)

	for _, c := range mergeCursorsByOffset(captured.Cursors, r.Trivia) {
		sink.Append(c)
	}
}

// mergeCursorsByOffset merges two cursor streams, each already ordered by
// source offset, into one ordered stream. Dummy (synthetic separator)
// cursors in a have no meaningful offset and are never compared against b:
// one is dropped when the next cursor of b comes before a's next real
// cursor (that trivia already separates the two tokens, as it did in the
// source), and is otherwise kept in its existing relative position.
func mergeCursorsByOffset(a, b []csstoken.Cursor) []csstoken.Cursor {
	out := make([]csstoken.Cursor, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Offset.IsDummy() && i+1 < len(a) && !a[i+1].Offset.IsDummy() && b[j].Offset < a[i+1].Offset {
			i++
			continue
		}
		if a[i].Offset.IsDummy() || a[i].Offset <= b[j].Offset {
			out = append(out, a[i])
			i++
			continue
		}
		out = append(out, b[j])
		j++
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
