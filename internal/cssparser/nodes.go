package cssparser

import (
	"github.com/cssgo/cssgo/internal/csstoken"
	"github.com/cssgo/cssgo/internal/csswriter"
)

// Node is implemented by every syntax node in this package: it can
// losslessly re-emit the exact cursors it was built from.
type Node interface {
	ToCursors(sink csswriter.CursorSink)
}

// ComponentValue is the sealed union Token | FunctionBlock | SimpleBlock
// (spec.md §4.2). Only types in this file implement it — the unexported
// marker method seals the set the way encoding/json seals its Token
// interface and esbuild seals css_ast.R.
type ComponentValue interface {
	Node
	isComponentValue()
}

// ComponentValues is a flat, ordered run of component values, the default
// shape of a prelude or a declaration's value.
type ComponentValues []ComponentValue

// ToCursors implements Node.
func (cs ComponentValues) ToCursors(sink csswriter.CursorSink) {
	for _, c := range cs {
		c.ToCursors(sink)
	}
}

// TokenValue wraps a single non-bracketed, non-function token as a
// ComponentValue.
type TokenValue struct {
	Cursor csstoken.Cursor
}

func (TokenValue) isComponentValue() {}

// ToCursors implements Node.
func (t TokenValue) ToCursors(sink csswriter.CursorSink) {
	sink.Append(t.Cursor)
}

// FunctionBlock is "name( ...component values... )" (spec.md §4.2). Close
// is nil when the input ran out before the matching ")" (an unterminated
// function is still a valid, if incomplete, parse per the Syntax Module).
type FunctionBlock struct {
	Name   csstoken.Cursor
	Values ComponentValues
	Close  *csstoken.Cursor
}

func (*FunctionBlock) isComponentValue() {}

// ToCursors implements Node.
func (f *FunctionBlock) ToCursors(sink csswriter.CursorSink) {
	sink.Append(f.Name)
	f.Values.ToCursors(sink)
	if f.Close != nil {
		sink.Append(*f.Close)
	}
}

// SimpleBlock is "{ ... }", "[ ... ]" or "( ... )" associated with one of
// PairWise's three bracket kinds (spec.md §4.2). Close is nil when the
// input ran out before the matching closer.
type SimpleBlock struct {
	Open   csstoken.Cursor
	Values ComponentValues
	Close  *csstoken.Cursor
}

func (*SimpleBlock) isComponentValue() {}

// ToCursors implements Node.
func (b *SimpleBlock) ToCursors(sink csswriter.CursorSink) {
	sink.Append(b.Open)
	b.Values.ToCursors(sink)
	if b.Close != nil {
		sink.Append(*b.Close)
	}
}

// BangImportant is the trailing "! important" a Declaration may carry,
// kept as two cursors (not folded into a bool) so the exact whitespace
// and casing round-trips (spec.md §4.2, §4.5).
type BangImportant struct {
	Bang  csstoken.Cursor
	Ident csstoken.Cursor
}

// ToCursors implements Node.
func (b BangImportant) ToCursors(sink csswriter.CursorSink) {
	sink.Append(b.Bang)
	sink.Append(b.Ident)
}

// Declaration is "name : value [ ! important ]" (spec.md §4.2).
type Declaration struct {
	Name      csstoken.Cursor
	Colon     csstoken.Cursor
	Value     ComponentValues
	Important *BangImportant
}

// ToCursors implements Node.
func (d *Declaration) ToCursors(sink csswriter.CursorSink) {
	sink.Append(d.Name)
	sink.Append(d.Colon)
	d.Value.ToCursors(sink)
	if d.Important != nil {
		d.Important.ToCursors(sink)
	}
}

// BadDeclaration is a declaration-shaped run of tokens the parser could not
// make sense of; it is kept verbatim (rather than discarded) so the
// surrounding block still round-trips (spec.md §7 recoverable tier).
type BadDeclaration struct {
	Tokens []csstoken.Cursor
}

// ToCursors implements Node.
func (b BadDeclaration) ToCursors(sink csswriter.CursorSink) {
	for _, c := range b.Tokens {
		sink.Append(c)
	}
}

// DeclarationItem is one entry of a Block's declaration list: a
// Declaration or BadDeclaration, plus the semicolon that ended it (nil at
// the end of a block with no trailing semicolon).
type DeclarationItem struct {
	Declaration    *Declaration
	BadDeclaration *BadDeclaration
	Semicolon      *csstoken.Cursor
}

// ToCursors implements Node.
func (d DeclarationItem) ToCursors(sink csswriter.CursorSink) {
	switch {
	case d.Declaration != nil:
		d.Declaration.ToCursors(sink)
	case d.BadDeclaration != nil:
		d.BadDeclaration.ToCursors(sink)
	}
	if d.Semicolon != nil {
		sink.Append(*d.Semicolon)
	}
}

// Rule is the sealed union AtRule | QualifiedRule (spec.md §4.2).
type Rule interface {
	Node
	isRule()
}

// AtRule is "@name prelude [ block | ; ]" (spec.md §4.2). Exactly one of
// Block or Semicolon is set once parsing succeeds; both nil means the
// input ran out before either was found.
type AtRule struct {
	AtKeyword csstoken.Cursor
	Prelude   ComponentValues
	Block     *Block
	Semicolon *csstoken.Cursor
}

func (*AtRule) isRule() {}

// ToCursors implements Node.
func (a *AtRule) ToCursors(sink csswriter.CursorSink) {
	sink.Append(a.AtKeyword)
	a.Prelude.ToCursors(sink)
	switch {
	case a.Block != nil:
		a.Block.ToCursors(sink)
	case a.Semicolon != nil:
		sink.Append(*a.Semicolon)
	}
}

// QualifiedRule is "prelude block" (spec.md §4.2), e.g. a selector list
// plus its declaration block.
type QualifiedRule struct {
	Prelude ComponentValues
	Block   *Block
}

func (*QualifiedRule) isRule() {}

// ToCursors implements Node.
func (q *QualifiedRule) ToCursors(sink csswriter.CursorSink) {
	q.Prelude.ToCursors(sink)
	if q.Block != nil {
		q.Block.ToCursors(sink)
	}
}

// BlockEntry is one member of a Block's body in source order: either a
// declaration (or bad-declaration) item or a nested rule. Keeping these in
// a single ordered slice (rather than two separate ones) is what lets a
// Block round-trip blocks where declarations and nested rules interleave.
type BlockEntry struct {
	Declaration *DeclarationItem
	Rule        Rule
}

// ToCursors implements Node.
func (e BlockEntry) ToCursors(sink csswriter.CursorSink) {
	switch {
	case e.Declaration != nil:
		e.Declaration.ToCursors(sink)
	case e.Rule != nil:
		e.Rule.ToCursors(sink)
	}
}

// Block is "{ declarations and/or rules }" (spec.md §4.3's Block
// production).
type Block struct {
	OpenCurly  csstoken.Cursor
	Items      []BlockEntry
	CloseCurly *csstoken.Cursor
}

// Declarations returns every declaration (and bad-declaration) item in the
// block, in source order, skipping nested rules.
func (b *Block) Declarations() []DeclarationItem {
	var out []DeclarationItem
	for _, e := range b.Items {
		if e.Declaration != nil {
			out = append(out, *e.Declaration)
		}
	}
	return out
}

// Rules returns every nested rule in the block, in source order, skipping
// declarations.
func (b *Block) Rules() []Rule {
	var out []Rule
	for _, e := range b.Items {
		if e.Rule != nil {
			out = append(out, e.Rule)
		}
	}
	return out
}

// ToCursors implements Node.
func (b *Block) ToCursors(sink csswriter.CursorSink) {
	sink.Append(b.OpenCurly)
	for _, e := range b.Items {
		e.ToCursors(sink)
	}
	if b.CloseCurly != nil {
		sink.Append(*b.CloseCurly)
	}
}

// StyleSheet is the top-level production: a flat list of rules with
// leading/interleaved CDC/CDO tokens discarded (spec.md §4.3).
type StyleSheet struct {
	Rules []Rule
}

// ToCursors implements Node.
func (s *StyleSheet) ToCursors(sink csswriter.CursorSink) {
	for _, r := range s.Rules {
		r.ToCursors(sink)
	}
}
