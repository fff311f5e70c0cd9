package cssparser

import (
	"testing"

	"github.com/cssgo/cssgo/internal/csstoken"
)

func TestRuleListMixesAtAndQualifiedRules(t *testing.T) {
	p := New(`@page{margin:0}a{color:red}`)
	rules, err := RuleList(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("len(rules) = %d, want 2", len(rules))
	}
	if _, ok := rules[0].(*AtRule); !ok {
		t.Fatalf("rules[0] is %T, want *AtRule", rules[0])
	}
	if _, ok := rules[1].(*QualifiedRule); !ok {
		t.Fatalf("rules[1] is %T, want *QualifiedRule", rules[1])
	}
}

func TestQualifiedRuleListSkipsStrayAtRule(t *testing.T) {
	p := New(`@page{margin:0}a{color:red}b{color:blue}`)
	rules, err := QualifiedRuleList(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("len(rules) = %d, want 2 (the stray @page must be skipped, not kept)", len(rules))
	}
}

func TestAtRuleListSkipsStrayQualifiedRule(t *testing.T) {
	p := New(`a{color:red}@page{margin:0}`)
	rules, err := AtRuleList(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("len(rules) = %d, want 1 (the stray qualified rule must be skipped)", len(rules))
	}
	if got := p.ParseStrLower(rules[0].AtKeyword); got != "@page" {
		t.Fatalf("rules[0].AtKeyword = %q, want \"@page\"", got)
	}
}

func TestDeclarationListHandlesBareSemicolons(t *testing.T) {
	p := New(`color:red;;font-size:1em`)
	items, err := DeclarationList(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var real int
	for _, item := range items {
		if item.Declaration != nil {
			real++
		}
	}
	if real != 2 {
		t.Fatalf("expected 2 real declarations, got %d among %d items", real, len(items))
	}
}

func TestDeclarationRuleListPreservesOrder(t *testing.T) {
	p := New(`color:red;@media screen{a{b:c}}font-size:1em`)
	items, err := DeclarationRuleList(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if items[0].Declaration == nil || items[0].Rule != nil {
		t.Fatalf("items[0] = %+v, want a declaration entry", items[0])
	}
	if items[1].Rule == nil {
		t.Fatalf("items[1] = %+v, want the nested @media rule", items[1])
	}
	if items[2].Declaration == nil {
		t.Fatalf("items[2] = %+v, want the trailing declaration", items[2])
	}
}

func TestCommaSeparatedPreludeListSplitsOnTopLevelCommas(t *testing.T) {
	p := New(`.a,.b,.c`)
	groups, err := CommaSeparatedPreludeList(p, csstoken.NoneKind)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("len(groups) = %d, want 3", len(groups))
	}
	for i, want := range []string{"a", "b", "c"} {
		if len(groups[i]) != 2 {
			t.Fatalf("groups[%d] has %d values, want 2 (Delim '.' and Ident)", i, len(groups[i]))
		}
		ident, ok := groups[i][1].(TokenValue)
		if !ok || p.ParseStrLower(ident.Cursor) != want {
			t.Fatalf("groups[%d][1] = %+v, want ident %q", i, groups[i][1], want)
		}
	}
}

func TestCommaSeparatedPreludeListSingleGroupNoCommas(t *testing.T) {
	p := New(`.a`)
	groups, err := CommaSeparatedPreludeList(p, csstoken.NoneKind)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, want 1 (no commas present)", len(groups))
	}
}
