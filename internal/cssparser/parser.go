// Package cssparser implements the cursor-based, backtrackable parser
// framework the rest of the toolkit's grammar productions are built from:
// lookahead, checkpoints, a stop set, a parsing state bitmask, a trivia
// skip policy, a trivia buffer, and an accumulating error log.
//
// Where the design this was ported from leans on lifetime-bound arena
// allocation for every AST container, this port uses ordinary Go slices —
// Go is garbage collected, so there is nothing for an arena to buy here
// (see DESIGN.md and SPEC_FULL.md §B.1).
package cssparser

import (
	"strings"

	"github.com/cssgo/cssgo/internal/cssatom"
	"github.com/cssgo/cssgo/internal/csserr"
	"github.com/cssgo/cssgo/internal/csslexer"
	"github.com/cssgo/cssgo/internal/csstoken"
)

// State is a bitmask of contextual parsing state. Productions push a new
// state with SetState and restore the prior value before returning, the
// same stack discipline as SetStop/SetSkip.
type State uint32

const (
	// Nested marks that parsing is happening inside a block ("{ ... }"),
	// which changes BadDeclaration's recovery stop kind (§7).
	Nested State = 1 << iota
)

// Parser wraps a Lexer with everything the syntax productions in this
// package need: lookahead via the lexer's own checkpoint/rewind (so no
// separate peek buffer has to be kept in sync), a stop set that tells
// list productions when to give up, a skip set of trivia kinds to
// auto-skip, the trivia this parser has skipped so far (in encounter
// order), and the accumulated recoverable errors.
type Parser struct {
	lex           *csslexer.Lexer
	stop          csstoken.KindSet
	state         State
	skip          csstoken.KindSet
	trivia        []csstoken.Cursor
	errors        csserr.Errors
	validProperty func(*Parser, csstoken.Cursor) bool
}

// New returns a Parser over source with no lexer extension features and
// the default skip set (whitespace + comments).
func New(source string) *Parser {
	return NewWithFeatures(source, 0)
}

// NewWithFeatures returns a Parser over source with the given lexer
// Feature bits enabled.
func NewWithFeatures(source string, features csslexer.Feature) *Parser {
	return &Parser{
		lex:  csslexer.NewWithFeatures(source, features),
		skip: csstoken.Trivia,
	}
}

// Source returns the source string being parsed.
func (p *Parser) Source() string {
	return p.lex.Source()
}

// Errors returns every recoverable error accumulated so far.
func (p *Parser) Errors() csserr.Errors {
	return p.errors
}

// AddError appends a recoverable diagnostic without halting the current
// production.
func (p *Parser) AddError(e csserr.Error) {
	p.errors.Add(e)
}

// Trivia returns every whitespace/comment cursor skipped so far, in the
// order encountered.
func (p *Parser) Trivia() []csstoken.Cursor {
	return p.trivia
}

// --- scoped mutators -------------------------------------------------

// SetStop installs a new stop KindSet and returns the previous one, so
// callers can restore it (`prev := p.SetStop(s); defer p.SetStop(prev)`).
func (p *Parser) SetStop(s csstoken.KindSet) csstoken.KindSet {
	prev := p.stop
	p.stop = s
	return prev
}

// Stop returns the current stop set.
func (p *Parser) Stop() csstoken.KindSet {
	return p.stop
}

// SetState installs a new state bitmask and returns the previous one.
func (p *Parser) SetState(s State) State {
	prev := p.state
	p.state = s
	return prev
}

// State returns the current state bitmask.
func (p *Parser) State() State {
	return p.state
}

// SetSkip installs a new trivia-skip KindSet and returns the previous one.
func (p *Parser) SetSkip(s csstoken.KindSet) csstoken.KindSet {
	prev := p.skip
	p.skip = s
	return prev
}

// SetValidProperty installs a property-name gate and returns the previous
// one, so a caller parsing a fixed-property context (a known at-rule's
// declaration list, say) can reject an unrecognized ident before a colon is
// even parsed (declaration.rs's valid_property hook). A nil gate, the
// default, accepts every property name.
func (p *Parser) SetValidProperty(f func(*Parser, csstoken.Cursor) bool) func(*Parser, csstoken.Cursor) bool {
	prev := p.validProperty
	p.validProperty = f
	return prev
}

// ValidProperty returns the currently installed property-name gate, or nil
// if none is installed.
func (p *Parser) ValidProperty() func(*Parser, csstoken.Cursor) bool {
	return p.validProperty
}

// --- raw lexer plumbing ------------------------------------------------

func (p *Parser) rawAdvance() csstoken.Cursor {
	start := p.lex.Offset()
	tok := p.lex.Advance()
	return csstoken.NewCursor(start, tok)
}

// Next consumes and returns the next non-skipped cursor, appending any
// skipped trivia cursors (whitespace/comments) to the trivia log in the
// order they were encountered.
func (p *Parser) Next() csstoken.Cursor {
	for {
		cur := p.rawAdvance()
		if p.skip.Contains(cur.Token.Kind) {
			p.trivia = append(p.trivia, cur)
			continue
		}
		return cur
	}
}

// PeekN inspects the k-th upcoming non-skipped cursor (k=0 is the very
// next one) without consuming it or recording any trivia it passes over.
// It costs O(k) lexer advances followed by one rewind; this parser has no
// perf budget beyond "correct", so no separate lookahead buffer is kept.
func (p *Parser) PeekN(k int) csstoken.Cursor {
	save := p.lex.Checkpoint()
	defer p.lex.Rewind(save)

	var cur csstoken.Cursor
	seen := -1
	for {
		cur = p.rawAdvance()
		if p.skip.Contains(cur.Token.Kind) {
			continue
		}
		seen++
		if seen == k {
			return cur
		}
	}
}

// PeekNext is PeekN(0).
func (p *Parser) PeekNext() csstoken.Cursor {
	return p.PeekN(0)
}

// AtEnd reports whether the next non-skipped token is Eof.
func (p *Parser) AtEnd() bool {
	return p.PeekNext().Token.Kind == csstoken.Eof
}

// NextIsStop reports whether the next non-skipped token's kind belongs to
// the current stop set.
func (p *Parser) NextIsStop() bool {
	return p.stop.Contains(p.PeekNext().Token.Kind)
}

// --- checkpoint / rewind / try_parse ------------------------------------

// Checkpoint is the opaque triple (lexer position, errors length, trivia
// length) a speculative parse can later Rewind back to.
type Checkpoint struct {
	lexer     csstoken.Cursor
	errorsLen int
	triviaLen int
}

// Checkpoint captures the parser's current state.
func (p *Parser) Checkpoint() Checkpoint {
	return Checkpoint{lexer: p.lex.Checkpoint(), errorsLen: len(p.errors), triviaLen: len(p.trivia)}
}

// Rewind restores the parser to a previously captured Checkpoint,
// discarding any errors or trivia recorded since, and repositioning the
// lexer. This is what keeps a failed TryParse invisible.
func (p *Parser) Rewind(c Checkpoint) {
	p.lex.Rewind(c.lexer)
	p.errors.Truncate(c.errorsLen)
	p.trivia = p.trivia[:c.triviaLen]
}

// TryParse checkpoints the parser, runs f, and on error restores the
// parser to exactly its pre-call state (position, errors, trivia) before
// propagating the error. Nothing about a failed speculative parse is
// observable afterwards.
func TryParse[T any](p *Parser, f func(*Parser) (T, error)) (T, error) {
	cp := p.Checkpoint()
	v, err := f(p)
	if err != nil {
		p.Rewind(cp)
		var zero T
		return zero, err
	}
	return v, nil
}

// ParseIfPeek runs peek against the upcoming cursor(s); if it reports
// false, ParseIfPeek returns (nil, nil) without touching the parser. If it
// reports true, parse runs for real (not speculatively — peek already
// committed the caller to this branch).
func ParseIfPeek[T any](p *Parser, peek func(*Parser) bool, parse func(*Parser) (T, error)) (*T, error) {
	if !peek(p) {
		return nil, nil
	}
	v, err := parse(p)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// --- lexeme helpers ------------------------------------------------

// ParseStr returns the raw lexeme a cursor refers to.
func (p *Parser) ParseStr(c csstoken.Cursor) string {
	return c.StrSlice(p.Source())
}

// ParseStrLower returns the ASCII-lowercased lexeme a cursor refers to.
func (p *Parser) ParseStrLower(c csstoken.Cursor) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, p.ParseStr(c))
}

// ParseAtomLower interns the lexeme a cursor refers to through
// cssatom.Intern, which lowercases it with strings.ToLower (so non-ASCII
// letters are lowercased too).
func (p *Parser) ParseAtomLower(c csstoken.Cursor) cssatom.Atom {
	return cssatom.Intern(p.ParseStr(c))
}

// EqIgnoreAsciiCase reports whether a cursor's lexeme equals s, ASCII-case-insensitively.
func (p *Parser) EqIgnoreAsciiCase(c csstoken.Cursor, s string) bool {
	lex := p.ParseStr(c)
	if len(lex) != len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		a, b := lex[i], s[i]
		if a >= 'A' && a <= 'Z' {
			a += 'a' - 'A'
		}
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

// EqAtom reports whether a cursor's lexeme equals s, ASCII-case-
// insensitively, by interning both sides and comparing atoms instead of
// bytes. This is what the grammar's keyword matching (at-rule names,
// !important, media/container feature keywords) should use in place of
// EqIgnoreAsciiCase: those comparisons run on every token the parser sees,
// and cssatom seeds exactly this package's keyword vocabulary so the common
// case never touches the dynamic LRU.
func (p *Parser) EqAtom(c csstoken.Cursor, s string) bool {
	return p.ParseAtomLower(c).Is(cssatom.Intern(s))
}

// EqAtomStr is EqAtom for two already-extracted strings, for the rare
// matcher (atRuleName's "@" stripping, say) that must massage a lexeme
// before comparing it.
func EqAtomStr(a, b string) bool {
	return cssatom.Intern(a).Is(cssatom.Intern(b))
}
