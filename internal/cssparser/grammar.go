package cssparser

import (
	"github.com/cssgo/cssgo/internal/csserr"
	"github.com/cssgo/cssgo/internal/csstoken"
)

// atRuleName returns an AtKeyword cursor's name with the leading "@"
// stripped, since the cursor's lexeme (like every other token's) spans the
// literal source text, "@" included.
func atRuleName(p *Parser, kw csstoken.Cursor) string {
	s := p.ParseStr(kw)
	if len(s) > 0 && s[0] == '@' {
		return s[1:]
	}
	return s
}

// ParseStyleSheet consumes the whole input as a StyleSheet: a flat run of
// rules with any top-level CDC/CDO tokens discarded (spec.md §4.3, the
// "top-level flag" rule of the CSS Syntax Module's consume-a-list-of-rules
// algorithm).
func (p *Parser) ParseStyleSheet() (*StyleSheet, error) {
	sheet := &StyleSheet{}
	for {
		if p.AtEnd() {
			// Consume the Eof so trailing whitespace/comments are recorded
			// as trivia instead of only being peeked past.
			p.Next()
			return sheet, nil
		}
		if p.PeekNext().Token.Kind == csstoken.CdcOrCdo {
			p.Next()
			continue
		}
		rule, err := p.ParseRule("")
		if err != nil {
			return sheet, err
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
}

// ParseRule parses one Rule: an AtRule if the next token is an at-keyword,
// otherwise a QualifiedRule. expectedAtName, if non-empty, is checked
// ASCII-case-insensitively against an at-rule's name and produces
// UnexpectedAtRule on mismatch; pass "" to accept any at-keyword, which is
// what the generic list productions in this package do.
func (p *Parser) ParseRule(expectedAtName string) (Rule, error) {
	if p.PeekNext().Token.Kind == csstoken.AtKeyword {
		return p.ParseAtRule(expectedAtName)
	}
	return p.ParseQualifiedRule()
}

// ParseAtRule parses "@name prelude [ block | ; ]" (spec.md §4.2). The
// current cursor must be an AtKeyword.
func (p *Parser) ParseAtRule(expectedName string) (*AtRule, error) {
	kw := p.Next()
	if kw.Token.Kind != csstoken.AtKeyword {
		err := csserr.Error{Kind: csserr.UnexpectedAtRule, Span: kw.Span(), Ident: kw.Token.Kind.String()}
		p.AddError(err)
		return nil, err
	}
	if expectedName != "" && !EqAtomStr(atRuleName(p, kw), expectedName) {
		err := csserr.Error{Kind: csserr.UnexpectedAtRule, Span: kw.Span(), Ident: atRuleName(p, kw)}
		p.AddError(err)
		return nil, err
	}

	rule := &AtRule{AtKeyword: kw}

	prevStop := p.SetStop(csstoken.LeftCurlyOrSemicolon)
	prelude, err := p.parseComponentValuesUntilStop()
	p.SetStop(prevStop)
	if err != nil {
		return nil, err
	}
	rule.Prelude = prelude

	switch p.PeekNext().Token.Kind {
	case csstoken.LeftCurly:
		block, err := p.ParseBlock()
		if err != nil {
			return nil, err
		}
		rule.Block = block
	case csstoken.Semicolon:
		semi := p.Next()
		rule.Semicolon = &semi
	}
	return rule, nil
}

// ParseQualifiedRule parses "prelude block" (spec.md §4.2).
func (p *Parser) ParseQualifiedRule() (*QualifiedRule, error) {
	rule := &QualifiedRule{}

	prevStop := p.SetStop(csstoken.New(csstoken.LeftCurly))
	prelude, err := p.parseComponentValuesUntilStop()
	p.SetStop(prevStop)
	if err != nil {
		return nil, err
	}
	rule.Prelude = prelude

	if p.PeekNext().Token.Kind != csstoken.LeftCurly {
		err := csserr.Error{Kind: csserr.MissingAtRuleBlock, Span: p.PeekNext().Span()}
		p.AddError(err)
		return rule, nil
	}
	block, err := p.ParseBlock()
	if err != nil {
		return nil, err
	}
	rule.Block = block
	return rule, nil
}

// ParseBlock parses "{ declarations and/or nested rules }" (spec.md §4.3's
// Block production). The current cursor must be a LeftCurly.
func (p *Parser) ParseBlock() (*Block, error) {
	open := p.Next()
	if open.Token.Kind != csstoken.LeftCurly {
		err := csserr.Error{Kind: csserr.Unexpected, Span: open.Span(), Token: open.Token}
		p.AddError(err)
		return nil, err
	}
	block := &Block{OpenCurly: open}

	prevState := p.SetState(p.State() | Nested)
	defer p.SetState(prevState)

	for {
		switch p.PeekNext().Token.Kind {
		case csstoken.RightCurly:
			closeCur := p.Next()
			block.CloseCurly = &closeCur
			return block, nil
		case csstoken.Eof:
			return block, nil
		case csstoken.Semicolon:
			semi := p.Next()
			block.Items = append(block.Items, BlockEntry{Declaration: &DeclarationItem{Semicolon: &semi}})
		case csstoken.AtKeyword:
			rule, err := p.ParseAtRule("")
			if err != nil {
				continue
			}
			block.Items = append(block.Items, BlockEntry{Rule: rule})
		default:
			item, err := p.parseDeclarationOrQualifiedRule()
			if err != nil {
				continue
			}
			switch v := item.(type) {
			case DeclarationItem:
				block.Items = append(block.Items, BlockEntry{Declaration: &v})
			case Rule:
				block.Items = append(block.Items, BlockEntry{Rule: v})
			}
		}
	}
}

// parseDeclarationOrQualifiedRule implements the ambiguity between a
// declaration ("ident : value ;") and a qualified rule ("prelude { ... }")
// that only resolves once a colon or a curly brace is seen: it speculatively
// tries a declaration first (the common case inside a block), falling back
// to a qualified rule, and finally to bad-declaration recovery.
func (p *Parser) parseDeclarationOrQualifiedRule() (interface{}, error) {
	if (Declaration{}).Peek(p, p.PeekNext()) {
		if decl, err := TryParse(p, (*Parser).parseDeclarationStrict); err == nil {
			semi := (*csstoken.Cursor)(nil)
			if p.PeekNext().Token.Kind == csstoken.Semicolon {
				c := p.Next()
				semi = &c
			}
			return DeclarationItem{Declaration: decl, Semicolon: semi}, nil
		}
	}

	if rule, err := TryParse(p, (*Parser).ParseQualifiedRule); err == nil {
		return Rule(rule), nil
	}

	bad, err := p.parseBadDeclaration()
	if err != nil {
		return nil, err
	}
	semi := (*csstoken.Cursor)(nil)
	if p.PeekNext().Token.Kind == csstoken.Semicolon {
		c := p.Next()
		semi = &c
	}
	return DeclarationItem{BadDeclaration: bad, Semicolon: semi}, nil
}

// parseDeclarationStrict parses a Declaration with no recovery: any
// deviation from "ident : value [ ! important ]" is an error, letting
// TryParse roll the attempt back cleanly. This mirrors declaration.rs's
// parse_declaration: parse the Ident, gate it through ValidProperty before
// the colon is even parsed, then parse the value and an optional trailing
// BangImportant.
func (p *Parser) parseDeclarationStrict() (*Declaration, error) {
	name := p.Next()
	if name.Token.Kind != csstoken.Ident {
		err := csserr.Error{Kind: csserr.ExpectedIdentOf, Span: name.Span(), Ident: "declaration name", Got: name.Token.Kind.String()}
		return nil, err
	}
	if p.validProperty != nil && !p.validProperty(p, name) {
		err := csserr.Error{Kind: csserr.UnknownDeclaration, Span: name.Span(), Ident: p.ParseStr(name)}
		return nil, err
	}
	if p.PeekNext().Token.Kind != csstoken.Colon {
		err := csserr.Error{Kind: csserr.Unexpected, Span: p.PeekNext().Span(), Token: p.PeekNext().Token}
		return nil, err
	}
	colon := p.Next()

	decl := &Declaration{Name: name, Colon: colon}

	prevStop := p.SetStop(csstoken.RightCurlyOrSemicolon)
	value, important, err := p.parseDeclarationValue()
	p.SetStop(prevStop)
	if err != nil {
		return nil, err
	}

	decl.Value = value
	decl.Important = important
	return decl, nil
}

// parseDeclarationValue consumes ComponentValues up to the current stop set,
// recognizing a trailing "! important" as it goes rather than scanning
// backwards afterward: every time the next token could begin a
// BangImportant, it speculatively consumes the two tokens and checks
// whether the stop set is now reached. If more value follows, the "!" and
// ident were not the trailing flag after all, so the attempt is rewound and
// both tokens are parsed as ordinary component values instead. This is the
// CSS Syntax Module's "last two non-whitespace tokens" rule (spec.md §4.2),
// expressed as a one-pass scan instead of a second pass over the result.
func (p *Parser) parseDeclarationValue() (ComponentValues, *BangImportant, error) {
	var values ComponentValues
	for {
		next := p.PeekNext()
		if next.Token.Kind == csstoken.Eof || p.NextIsStop() {
			return values, nil, nil
		}
		if (BangImportant{}).Peek(p, next) {
			cp := p.Checkpoint()
			bang := p.Next()
			ident := p.Next()
			if next := p.PeekNext(); next.Token.Kind == csstoken.Eof || p.NextIsStop() {
				return values, &BangImportant{Bang: bang, Ident: ident}, nil
			}
			p.Rewind(cp)
		}
		cv, err := p.ParseComponentValue()
		if err != nil {
			return values, nil, err
		}
		values = append(values, cv)
	}
}

// parseBadDeclaration consumes tokens up to (but not including) the
// recovery stop kind appropriate for the current nesting (spec.md §7): a
// nested block recovers at "}" or ";", a top-level one only at ";" (there
// is no enclosing "}" to stop at).
func (p *Parser) parseBadDeclaration() (*BadDeclaration, error) {
	stop := csstoken.New(csstoken.Semicolon)
	if p.State()&Nested != 0 {
		stop = csstoken.RightCurlyOrSemicolon
	}

	bad := &BadDeclaration{}
	for {
		next := p.PeekNext()
		if next.Token.Kind == csstoken.Eof {
			return bad, nil
		}
		if stop.Contains(next.Token.Kind) && next.Token.Kind != csstoken.RightCurly {
			return bad, nil
		}
		if next.Token.Kind == csstoken.RightCurly && stop.Contains(csstoken.RightCurly) {
			return bad, nil
		}
		bad.Tokens = append(bad.Tokens, p.Next())
	}
}

// ParseComponentValue parses a single ComponentValue: a FunctionBlock, a
// SimpleBlock, or a bare TokenValue (spec.md §4.2's consume-a-component-
// value algorithm).
func (p *Parser) ParseComponentValue() (ComponentValue, error) {
	next := p.PeekNext()
	switch next.Token.Kind {
	case csstoken.Function:
		return p.parseFunctionBlock()
	case csstoken.LeftParen, csstoken.LeftSquare, csstoken.LeftCurly:
		return p.parseSimpleBlock()
	default:
		return Parse[TokenValue](p)
	}
}

func (p *Parser) parseFunctionBlock() (*FunctionBlock, error) {
	name := p.Next()
	fn := &FunctionBlock{Name: name}

	prevStop := p.SetStop(p.Stop().Union(csstoken.New(csstoken.RightParen)))
	defer p.SetStop(prevStop)

	for {
		next := p.PeekNext()
		if next.Token.Kind == csstoken.RightParen {
			closeCur := p.Next()
			fn.Close = &closeCur
			return fn, nil
		}
		if next.Token.Kind == csstoken.Eof {
			return fn, nil
		}
		cv, err := p.ParseComponentValue()
		if err != nil {
			return nil, err
		}
		fn.Values = append(fn.Values, cv)
	}
}

func (p *Parser) parseSimpleBlock() (*SimpleBlock, error) {
	open := p.Next()
	pw, _ := open.Token.ToPairWise()
	endKind := pw.EndKind()
	block := &SimpleBlock{Open: open}

	prevStop := p.SetStop(p.Stop().Union(csstoken.New(endKind)))
	defer p.SetStop(prevStop)

	for {
		next := p.PeekNext()
		if next.Token.Kind == endKind {
			closeCur := p.Next()
			block.Close = &closeCur
			return block, nil
		}
		if next.Token.Kind == csstoken.Eof {
			return block, nil
		}
		cv, err := p.ParseComponentValue()
		if err != nil {
			return nil, err
		}
		block.Values = append(block.Values, cv)
	}
}

// parseComponentValuesUntilStop consumes ComponentValues until the current
// stop set is hit (the stopping token is left unconsumed) or EOF.
func (p *Parser) parseComponentValuesUntilStop() (ComponentValues, error) {
	var values ComponentValues
	for {
		next := p.PeekNext()
		if next.Token.Kind == csstoken.Eof || p.NextIsStop() {
			return values, nil
		}
		cv, err := p.ParseComponentValue()
		if err != nil {
			return values, err
		}
		values = append(values, cv)
	}
}

// ParseComponentValues is the exported form of parseComponentValuesUntilStop,
// for callers (e.g. a custom at-rule prelude parser) that want to delimit a
// run of component values against a caller-chosen stop set.
func (p *Parser) ParseComponentValues(stop csstoken.KindSet) (ComponentValues, error) {
	prev := p.SetStop(stop)
	defer p.SetStop(prev)
	return p.parseComponentValuesUntilStop()
}
