package cssparser

import (
	"github.com/cssgo/cssgo/internal/cssatom"
	"github.com/cssgo/cssgo/internal/csserr"
	"github.com/cssgo/cssgo/internal/csstoken"
)

// This file implements the media/container query feature grammars spec.md
// §4.3 lists as "feature helpers": discrete_feature, ranged_feature, and
// boolean_feature. All three operate on a SimpleBlock's inner
// ComponentValues — the "( ... )" a @media/@container condition parses as
// a paren SimpleBlock — rather than re-lexing, since the block's Values
// are already a flat run of ComponentValue.

// DiscreteFeature is the result of parsing "(<name>)" or
// "(<name>: <ident>)" against a fixed keyword set.
type DiscreteFeature struct {
	Name  csstoken.Cursor
	Value *csstoken.Cursor
}

// ParseDiscreteFeature parses block's inner values as a discrete feature
// named nameIdent (matched ASCII-case-insensitively), whose optional value
// must ASCII-case-insensitively match one of allowedValues.
func ParseDiscreteFeature(p *Parser, block *SimpleBlock, nameIdent string, allowedValues []string) (*DiscreteFeature, error) {
	values := block.Values
	if len(values) == 0 {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		p.AddError(err)
		return nil, err
	}
	name, ok := asIdent(values[0])
	if !ok || !p.EqAtom(name, nameIdent) {
		err := csserr.Error{Kind: csserr.UnexpectedIdent, Span: block.Open.Span(), Ident: nameIdent}
		p.AddError(err)
		return nil, err
	}
	if len(values) == 1 {
		return &DiscreteFeature{Name: name}, nil
	}
	if len(values) != 3 {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		p.AddError(err)
		return nil, err
	}
	if colon, ok := asKind(values[1], csstoken.Colon); !ok {
		err := csserr.Error{Kind: csserr.Unexpected, Span: colon.Span(), Token: colon.Token}
		p.AddError(err)
		return nil, err
	}
	val, ok := asIdent(values[2])
	if !ok {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		p.AddError(err)
		return nil, err
	}
	valAtom := p.ParseAtomLower(val)
	for _, allowed := range allowedValues {
		if valAtom.Is(cssatom.Intern(allowed)) {
			return &DiscreteFeature{Name: name, Value: &val}, nil
		}
	}
	err := csserr.Error{Kind: csserr.UnexpectedIdent, Span: val.Span(), Ident: p.ParseStrLower(val)}
	p.AddError(err)
	return nil, err
}

// BooleanFeature is the result of parsing "(<name>)" or "(<name>: 0|1)".
type BooleanFeature struct {
	Name  csstoken.Cursor
	Value *bool
}

// ParseBooleanFeature parses block's inner values as a boolean feature
// named nameIdent.
func ParseBooleanFeature(p *Parser, block *SimpleBlock, nameIdent string) (*BooleanFeature, error) {
	values := block.Values
	if len(values) == 0 {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		p.AddError(err)
		return nil, err
	}
	name, ok := asIdent(values[0])
	if !ok || !p.EqAtom(name, nameIdent) {
		err := csserr.Error{Kind: csserr.UnexpectedIdent, Span: block.Open.Span(), Ident: nameIdent}
		p.AddError(err)
		return nil, err
	}
	if len(values) == 1 {
		return &BooleanFeature{Name: name}, nil
	}
	if len(values) != 3 {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		p.AddError(err)
		return nil, err
	}
	if _, ok := asKind(values[1], csstoken.Colon); !ok {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		p.AddError(err)
		return nil, err
	}
	num, ok := asKind(values[2], csstoken.Number)
	if !ok || !num.Token.IsInt || (num.Token.Value != 0 && num.Token.Value != 1) {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		p.AddError(err)
		return nil, err
	}
	v := num.Token.Value == 1
	return &BooleanFeature{Name: name, Value: &v}, nil
}

// ComparisonOp is one of the five range comparison operators a modern
// ranged-feature grammar may use between a value and the feature keyword.
type ComparisonOp uint8

const (
	OpNone ComparisonOp = iota
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
)

// RangedFeatureKeyword is a ranged feature's name together with whether it
// is one of the legacy "min-"/"max-" prefixed forms (spec.md §4.3:
// RangedFeatureKeyword::is_legacy() selects which grammar applies).
type RangedFeatureKeyword struct {
	Base string
	Min  bool
	Max  bool
}

// IsLegacy reports whether this keyword is a min-/max- prefixed legacy
// form, which only accepts the colon grammar, never the comparison-operator
// range grammar.
func (k RangedFeatureKeyword) IsLegacy() bool {
	return k.Min || k.Max
}

// Ident returns the keyword's spelled-out identifier.
func (k RangedFeatureKeyword) Ident() string {
	switch {
	case k.Min:
		return "min-" + k.Base
	case k.Max:
		return "max-" + k.Base
	default:
		return k.Base
	}
}

// RangedFeature is the result of parsing a ranged media/container feature:
// either the legacy "(<kw>: <v>)" form, or the modern
// "<v> <op> <kw> [<op> <v>]" form, or the single-sided keyword-first
// "<kw> <op> <v>" form (spec.md §4.3, §8 "Ranged feature shape").
type RangedFeature struct {
	Keyword RangedFeatureKeyword
	Op      ComparisonOp
	Value   csstoken.Cursor
	Op2     ComparisonOp
	Value2  *csstoken.Cursor
}

// ParseRangedFeature parses block's inner values as a ranged feature over
// keyword.
func ParseRangedFeature(p *Parser, block *SimpleBlock, keyword RangedFeatureKeyword) (*RangedFeature, error) {
	values := block.Values
	if keyword.IsLegacy() {
		return parseLegacyRangedFeature(p, block, keyword, values)
	}
	if rf, err := parseLegacyRangedFeature(p, block, keyword, values); err == nil {
		return rf, nil
	}
	return parseModernRangedFeature(p, block, keyword, values)
}

func parseLegacyRangedFeature(p *Parser, block *SimpleBlock, keyword RangedFeatureKeyword, values ComponentValues) (*RangedFeature, error) {
	if len(values) != 3 {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		return nil, err
	}
	name, ok := asIdent(values[0])
	if !ok || !p.EqAtom(name, keyword.Ident()) {
		err := csserr.Error{Kind: csserr.UnexpectedIdent, Span: block.Open.Span(), Ident: keyword.Ident()}
		return nil, err
	}
	if _, ok := asKind(values[1], csstoken.Colon); !ok {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		return nil, err
	}
	val, ok := asNumeric(values[2])
	if !ok {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		return nil, err
	}
	return &RangedFeature{Keyword: keyword, Op: OpEq, Value: val}, nil
}

func parseModernRangedFeature(p *Parser, block *SimpleBlock, keyword RangedFeatureKeyword, values ComponentValues) (*RangedFeature, error) {
	// Single-sided, keyword-first form: "<kw> <op> <v>" (e.g. "width<=800px"),
	// the mirror image of the value-first form below. Media Queries Level 4
	// allows a range feature to be written in either order; only the
	// single-value form has a keyword-first spelling; the double-sided
	// form always reads value < keyword < value.
	if name, ok := asIdent(valueAt(values, 0)); ok && p.EqAtom(name, keyword.Base) {
		op, consumed, ok := readOp(values, 1)
		if ok {
			if op == OpEq {
				err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
				p.AddError(err)
				return nil, err
			}
			val, okVal := asNumeric(valueAt(values, 1+consumed))
			if okVal && 1+consumed == len(values)-1 {
				return &RangedFeature{Keyword: keyword, Op: op, Value: val}, nil
			}
		}
	}

	val1, op1, idx, ok := readValueThenOp(values, 0)
	if !ok {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		p.AddError(err)
		return nil, err
	}
	if op1 == OpEq {
		err := csserr.Error{Kind: csserr.Unexpected, Span: val1.Span()}
		p.AddError(err)
		return nil, err
	}
	name, ok := asIdent(valueAt(values, idx))
	if !ok || !p.EqAtom(name, keyword.Base) {
		err := csserr.Error{Kind: csserr.UnexpectedIdent, Span: block.Open.Span(), Ident: keyword.Base}
		p.AddError(err)
		return nil, err
	}
	idx++

	rf := &RangedFeature{Keyword: keyword, Op: op1, Value: val1}
	if idx >= len(values) {
		return rf, nil
	}

	op2, consumed, ok := readOp(values, idx)
	if !ok {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		p.AddError(err)
		return nil, err
	}
	if op2 == OpEq {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		p.AddError(err)
		return nil, err
	}
	idx += consumed
	val2, ok := asNumeric(valueAt(values, idx))
	if !ok {
		err := csserr.Error{Kind: csserr.Unexpected, Span: block.Open.Span()}
		p.AddError(err)
		return nil, err
	}
	rf.Op2 = op2
	rf.Value2 = &val2
	return rf, nil
}

// readValueThenOp reads a numeric value at values[i] followed by a
// comparison operator, returning the value, the operator, and the index of
// the token after the operator.
func readValueThenOp(values ComponentValues, i int) (csstoken.Cursor, ComparisonOp, int, bool) {
	val, ok := asNumeric(valueAt(values, i))
	if !ok {
		return csstoken.Cursor{}, OpNone, i, false
	}
	op, consumed, ok := readOp(values, i+1)
	if !ok {
		return csstoken.Cursor{}, OpNone, i, false
	}
	return val, op, i + 1 + consumed, true
}

// readOp reads a one- or two-token comparison operator starting at
// values[i] ('<', '<=', '>', '>=', or '=') and reports how many tokens it
// consumed.
func readOp(values ComponentValues, i int) (ComparisonOp, int, bool) {
	first, ok := asDelim(valueAt(values, i))
	if !ok {
		return OpNone, 0, false
	}
	switch first.Token.DelimChar {
	case '=':
		return OpEq, 1, true
	case '<', '>':
		base := OpLt
		if first.Token.DelimChar == '>' {
			base = OpGt
		}
		if second, ok := asDelim(valueAt(values, i+1)); ok && second.Token.DelimChar == '=' {
			if base == OpLt {
				return OpLe, 2, true
			}
			return OpGe, 2, true
		}
		return base, 1, true
	default:
		return OpNone, 0, false
	}
}

func valueAt(values ComponentValues, i int) ComponentValue {
	if i < 0 || i >= len(values) {
		return nil
	}
	return values[i]
}

func asIdent(v ComponentValue) (csstoken.Cursor, bool) {
	return asKind(v, csstoken.Ident)
}

func asDelim(v ComponentValue) (csstoken.Cursor, bool) {
	return asKind(v, csstoken.Delim)
}

func asNumeric(v ComponentValue) (csstoken.Cursor, bool) {
	tv, ok := v.(TokenValue)
	if !ok || !tv.Cursor.Token.Kind.IsNumeric() {
		return csstoken.Cursor{}, false
	}
	return tv.Cursor, true
}

func asKind(v ComponentValue, kind csstoken.Kind) (csstoken.Cursor, bool) {
	tv, ok := v.(TokenValue)
	if !ok || tv.Cursor.Token.Kind != kind {
		return csstoken.Cursor{}, false
	}
	return tv.Cursor, true
}
