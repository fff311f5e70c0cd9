package cssparser

import "github.com/cssgo/cssgo/internal/csstoken"

// The functions in this file are the generic "between { and }" list
// productions spec.md §4.3 describes as separate traits (RuleList,
// QualifiedRuleList, AtRuleList, DeclarationList, DeclarationRuleList,
// CommaSeparatedPreludeList). Rust models each as a trait a Block's
// associated type implements; Go has no static trait dispatch without a
// receiver, so each is a plain function taking the already-open Parser
// (positioned just after the "{") and returning when it sees the matching
// "}" (left unconsumed) or Eof. Callers needing the closing cursor read it
// themselves, the same way ParseBlock does with CloseCurly.

// RuleList parses a mixed run of at-rules and qualified rules, stopping at
// "}" or Eof.
func RuleList(p *Parser) ([]Rule, error) {
	var rules []Rule
	for {
		switch p.PeekNext().Token.Kind {
		case csstoken.RightCurly, csstoken.Eof:
			return rules, nil
		default:
			rule, err := p.ParseRule("")
			if err != nil {
				continue
			}
			rules = append(rules, rule)
		}
	}
}

// QualifiedRuleList parses a run of qualified rules only; an at-rule
// encountered here is parsed as a whole and dropped from the result (see
// skipUnexpectedAtRule), without killing the rest of the list. No error is
// recorded for the dropped at-rule.
func QualifiedRuleList(p *Parser) ([]*QualifiedRule, error) {
	var rules []*QualifiedRule
	for {
		switch p.PeekNext().Token.Kind {
		case csstoken.RightCurly, csstoken.Eof:
			return rules, nil
		case csstoken.AtKeyword:
			p.skipUnexpectedAtRule()
		default:
			rule, err := p.ParseQualifiedRule()
			if err != nil {
				continue
			}
			rules = append(rules, rule)
		}
	}
}

// AtRuleList parses a run of at-rules only; a qualified rule (bare
// prelude + block with no leading "@") is skipped the same way
// QualifiedRuleList skips a stray at-rule.
func AtRuleList(p *Parser) ([]*AtRule, error) {
	var rules []*AtRule
	for {
		switch p.PeekNext().Token.Kind {
		case csstoken.RightCurly, csstoken.Eof:
			return rules, nil
		case csstoken.AtKeyword:
			rule, err := p.ParseAtRule("")
			if err != nil {
				continue
			}
			rules = append(rules, rule)
		default:
			if _, err := p.ParseQualifiedRule(); err != nil {
				continue
			}
		}
	}
}

// DeclarationList parses a run of declarations (with bad-declaration
// recovery) and no nested rules, stopping at "}" or Eof.
func DeclarationList(p *Parser) ([]DeclarationItem, error) {
	var items []DeclarationItem
	for {
		switch p.PeekNext().Token.Kind {
		case csstoken.RightCurly, csstoken.Eof:
			return items, nil
		case csstoken.Semicolon:
			semi := p.Next()
			items = append(items, DeclarationItem{Semicolon: &semi})
		default:
			item, err := p.parseDeclarationOrBadDeclaration()
			if err != nil {
				continue
			}
			items = append(items, item)
		}
	}
}

// DeclarationRuleList parses a mix of declarations and nested (at-)rules in
// source order, the shape @font-face-style at-rules with both declarations
// and nested conditional rules use.
func DeclarationRuleList(p *Parser) ([]BlockEntry, error) {
	var items []BlockEntry
	for {
		switch p.PeekNext().Token.Kind {
		case csstoken.RightCurly, csstoken.Eof:
			return items, nil
		case csstoken.Semicolon:
			semi := p.Next()
			items = append(items, BlockEntry{Declaration: &DeclarationItem{Semicolon: &semi}})
		case csstoken.AtKeyword:
			rule, err := p.ParseAtRule("")
			if err != nil {
				continue
			}
			items = append(items, BlockEntry{Rule: rule})
		default:
			item, err := p.parseDeclarationOrBadDeclaration()
			if err != nil {
				continue
			}
			items = append(items, BlockEntry{Declaration: &item})
		}
	}
}

// CommaSeparatedPreludeList parses a comma-separated run of component-value
// groups (e.g. a selector list's individual complex selectors, or
// @supports's comma-joined conditions), stopping at stop or Eof. Each
// element stops at a comma or stop; the commas themselves are not part of
// any element's ComponentValues.
func CommaSeparatedPreludeList(p *Parser, stop csstoken.KindSet) ([]ComponentValues, error) {
	elemStop := stop.Union(csstoken.New(csstoken.Comma))
	var out []ComponentValues
	for {
		values, err := p.ParseComponentValues(elemStop)
		if err != nil {
			return out, err
		}
		out = append(out, values)
		if p.PeekNext().Token.Kind != csstoken.Comma {
			return out, nil
		}
		p.Next()
	}
}

// skipUnexpectedAtRule discards one at-rule encountered somewhere a list
// production doesn't accept it, without losing track of it: it is parsed
// normally (so its tokens are consumed in one coherent unit) and simply not
// appended to the caller's result.
func (p *Parser) skipUnexpectedAtRule() {
	_, _ = p.ParseAtRule("")
}

// parseDeclarationOrBadDeclaration is parseDeclarationOrQualifiedRule's
// sibling for list productions that never accept a nested qualified rule:
// it tries a strict declaration first, falling back straight to
// bad-declaration recovery (no qualified-rule attempt in between).
func (p *Parser) parseDeclarationOrBadDeclaration() (DeclarationItem, error) {
	if decl, err := TryParse(p, (*Parser).parseDeclarationStrict); err == nil {
		semi := (*csstoken.Cursor)(nil)
		if p.PeekNext().Token.Kind == csstoken.Semicolon {
			c := p.Next()
			semi = &c
		}
		return DeclarationItem{Declaration: decl, Semicolon: semi}, nil
	}

	bad, err := p.parseBadDeclaration()
	if err != nil {
		return DeclarationItem{}, err
	}
	semi := (*csstoken.Cursor)(nil)
	if p.PeekNext().Token.Kind == csstoken.Semicolon {
		c := p.Next()
		semi = &c
	}
	return DeclarationItem{BadDeclaration: bad, Semicolon: semi}, nil
}
