package cssparser

import (
	"github.com/cssgo/cssgo/internal/csserr"
)

// NoPreludeAllowed marks an at-rule grammar that forbids a prelude (e.g.
// any at-rule whose grammar is "@name { ... }" with nothing between the
// keyword and the block). RequireNoPrelude enforces it against a parsed
// AtRule.
type NoPreludeAllowed struct{}

// NoBlockAllowed marks an at-rule grammar that forbids a block (e.g.
// `@charset "utf-8";`, which is always terminated by a semicolon).
// RequireNoBlock enforces it against a parsed AtRule.
type NoBlockAllowed struct{}

// RequireNoPrelude reports (and records) an error if rule carries a
// non-empty prelude.
func RequireNoPrelude(p *Parser, rule *AtRule) error {
	if len(rule.Prelude) == 0 {
		return nil
	}
	err := csserr.Error{Kind: csserr.Unexpected, Span: rule.AtKeyword.Span()}
	p.AddError(err)
	return err
}

// RequireNoBlock reports (and records) an error if rule carries a block
// instead of ending at a semicolon.
func RequireNoBlock(p *Parser, rule *AtRule) error {
	if rule.Block == nil {
		return nil
	}
	err := csserr.Error{Kind: csserr.Unexpected, Span: rule.Block.OpenCurly.Span()}
	p.AddError(err)
	return err
}
