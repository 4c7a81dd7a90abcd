package syntax

import (
	"regexp"
	"sort"

	"github.com/aesop-editor/aesop/internal/rope"
)

// TokenizerRule matches Regexp within a document and emits a token
// with TokenRole for each match; SubRules are matched again within the
// outer match's span, and their tokens are emitted alongside the outer
// match's token; overlapping tokens are not resolved. This mirrors the
// teacher's own syntax-rule shape (a thin wrapper over regexp.Regexp
// with optional nested rules), generalized from "one hardcoded
// language" to a small table the RuleProvider walks.
type TokenizerRule struct {
	Regexp    string
	TokenRole TokenRole
	SubRules  []TokenizerRule

	compiled *regexp.Regexp
}

func (r *TokenizerRule) re() *regexp.Regexp {
	if r.compiled == nil {
		r.compiled = regexp.MustCompile(r.Regexp)
	}
	return r.compiled
}

// RuleProvider is a Provider driven by a flat table of TokenizerRules,
// each independently matched against the document text in the
// requested range.
type RuleProvider struct {
	Rules []TokenizerRule
}

func (p *RuleProvider) TokensIntersectingRange(r *rope.Rope, start, end uint64) []Token {
	if r == nil || start >= end {
		return nil
	}
	text, err := r.Slice(start, end)
	if err != nil {
		return nil
	}

	var tokens []Token
	for i := range p.Rules {
		tokens = append(tokens, matchRule(&p.Rules[i], text, start)...)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].StartPos < tokens[j].StartPos })
	return tokens
}

func matchRule(rule *TokenizerRule, text []byte, base uint64) []Token {
	var tokens []Token
	for _, loc := range rule.re().FindAllIndex(text, -1) {
		matchStart := base + uint64(loc[0])
		matchEnd := base + uint64(loc[1])
		if rule.TokenRole != TokenRoleNone {
			tokens = append(tokens, Token{StartPos: matchStart, EndPos: matchEnd, Role: rule.TokenRole})
		}
		for i := range rule.SubRules {
			tokens = append(tokens, matchRule(&rule.SubRules[i], text[loc[0]:loc[1]], matchStart)...)
		}
	}
	return tokens
}

// jsonRules is a minimal JSON highlighter: strings, numbers, booleans.
func jsonRules() []TokenizerRule {
	return []TokenizerRule{
		{Regexp: `"(\\.|[^"\\])*"`, TokenRole: TokenRoleString},
		{Regexp: `-?\d+(\.\d+)?([eE][+-]?\d+)?`, TokenRole: TokenRoleNumber},
		{Regexp: `\b(true|false|null)\b`, TokenRole: TokenRoleKeyword},
	}
}

// goRules is a minimal Go highlighter: keywords, strings, comments.
func goRules() []TokenizerRule {
	return []TokenizerRule{
		{Regexp: `//[^\n]*`, TokenRole: TokenRoleComment},
		{Regexp: `/\*([^*]|\*[^/])*\*/`, TokenRole: TokenRoleComment},
		{Regexp: `"(\\.|[^"\\])*"`, TokenRole: TokenRoleString},
		{Regexp: "`[^`]*`", TokenRole: TokenRoleString},
		{Regexp: `\b(func|package|import|return|if|else|for|range|var|const|type|struct|interface|go|chan|select|switch|case|default|defer|map)\b`, TokenRole: TokenRoleKeyword},
	}
}

// gitCommitRules highlights comment lines in a commit-message buffer,
// adapted from the teacher's syntax/rules/gitcommit.go.
func gitCommitRules() []TokenizerRule {
	return []TokenizerRule{
		{
			Regexp:    `(^|\n)#[^\n]*`,
			TokenRole: TokenRoleNone,
			SubRules: []TokenizerRule{
				{
					Regexp:    `#[^\n]*`,
					TokenRole: TokenRoleComment,
				},
			},
		},
	}
}
