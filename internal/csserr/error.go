// Package csserr defines the closed set of recoverable diagnostics a Parser
// can report, and the accumulator that collects them while parsing
// continues (per spec.md §7's two-tier error model: a fatal Go error halts
// the current production, while these accumulate and let the caller see a
// partial parse plus every error tolerance tripped along the way).
package csserr

import (
	"fmt"

	"github.com/cssgo/cssgo/internal/csstoken"
)

// Kind identifies which diagnostic an Error carries. Only the payload fields
// documented for a given Kind are meaningful; see the field doc comments.
type Kind uint8

const (
	Unexpected Kind = iota
	UnexpectedDelim
	UnexpectedIdent
	UnexpectedDuplicateIdent
	UnexpectedFunction
	UnexpectedAtRule
	UnexpectedDimension
	ExpectedIdentOf
	NumberTooSmall
	NumberOutOfBounds
	NoSelector
	MissingAtRulePrelude
	MissingAtRuleBlock
	Unimplemented
	UnknownDeclaration
)

// Error is a single recoverable diagnostic. It implements the standard
// error interface (like encoding/json.SyntaxError) rather than being one of
// many concrete types per Kind: the payload fields below are the union of
// everything any Kind needs, and Error() renders the one-liner appropriate
// to Kind.
type Error struct {
	Kind Kind
	Span csstoken.Span

	// Populated for Unexpected.
	Token csstoken.Token
	// Populated for UnexpectedDelim.
	Delim byte
	// Populated for UnexpectedIdent, UnexpectedDuplicateIdent,
	// UnexpectedFunction, UnexpectedAtRule, UnknownDeclaration's ident.
	Ident string
	// Populated for UnexpectedDimension.
	Unit string
	// Populated for ExpectedIdentOf (Ident holds what was expected).
	Got string
	// Populated for NumberTooSmall / NumberOutOfBounds.
	Value float64
	// Populated for NumberOutOfBounds.
	Range string
	// Populated for NoSelector.
	OuterSpan, InnerSpan csstoken.Span
}

func (e Error) Error() string {
	switch e.Kind {
	case Unexpected:
		return fmt.Sprintf("unexpected %s at %s", e.Token.Kind, e.Span)
	case UnexpectedDelim:
		return fmt.Sprintf("unexpected delimiter %q at %s", e.Delim, e.Span)
	case UnexpectedIdent:
		return fmt.Sprintf("unexpected identifier %q at %s", e.Ident, e.Span)
	case UnexpectedDuplicateIdent:
		return fmt.Sprintf("unexpected duplicate identifier %q at %s", e.Ident, e.Span)
	case UnexpectedFunction:
		return fmt.Sprintf("unexpected function %q at %s", e.Ident, e.Span)
	case UnexpectedAtRule:
		return fmt.Sprintf("unexpected at-rule %q at %s", e.Ident, e.Span)
	case UnexpectedDimension:
		return fmt.Sprintf("unexpected dimension unit %q at %s", e.Unit, e.Span)
	case ExpectedIdentOf:
		return fmt.Sprintf("expected identifier %q, got %q at %s", e.Ident, e.Got, e.Span)
	case NumberTooSmall:
		return fmt.Sprintf("number %v is too small at %s", e.Value, e.Span)
	case NumberOutOfBounds:
		return fmt.Sprintf("number %v is out of bounds %s at %s", e.Value, e.Range, e.Span)
	case NoSelector:
		return fmt.Sprintf("no selector found in %s", e.OuterSpan)
	case MissingAtRulePrelude:
		return fmt.Sprintf("missing at-rule prelude at %s", e.Span)
	case MissingAtRuleBlock:
		return fmt.Sprintf("missing at-rule block at %s", e.Span)
	case Unimplemented:
		return fmt.Sprintf("unimplemented at %s", e.Span)
	case UnknownDeclaration:
		return fmt.Sprintf("unknown declaration %q at %s", e.Ident, e.Span)
	default:
		return fmt.Sprintf("css error at %s", e.Span)
	}
}

// Span is re-exported so callers of this package rarely need to import
// csstoken directly just to build an Error by hand.
type Span = csstoken.Span
