// Package syntax defines the Provider interface the compositor
// consults for highlight tokens, plus a stub implementation (no
// tokens) and a small regexp-rule-driven implementation. Real language
// intelligence (tree-sitter, LSP) is an external collaborator and out
// of scope here; Provider is the seam where it would plug in.
package syntax

import "github.com/aesop-editor/aesop/internal/rope"

// TokenRole classifies a token for styling purposes.
type TokenRole int

const (
	TokenRoleNone TokenRole = iota
	TokenRoleKeyword
	TokenRoleString
	TokenRoleNumber
	TokenRoleComment
	TokenRoleOperator
)

// Token is a highlighted span [StartPos, EndPos) of byte offsets.
type Token struct {
	StartPos uint64
	EndPos   uint64
	Role     TokenRole
}

// Language tags recognized by the builtin rule sets.
type Language string

const (
	LanguageUndefined  Language = ""
	LanguageJSON       Language = "json"
	LanguageGo         Language = "go"
	LanguageGitCommit  Language = "gitcommit"
)

// Provider produces highlight tokens for a byte range of a document.
type Provider interface {
	// TokensIntersectingRange returns tokens overlapping [start, end),
	// ordered by StartPos.
	TokensIntersectingRange(r *rope.Rope, start, end uint64) []Token
}

// Stub is a Provider that never returns tokens, used when syntax
// highlighting is disabled or no rule set matches the document's
// language.
type Stub struct{}

func (Stub) TokensIntersectingRange(_ *rope.Rope, _, _ uint64) []Token {
	return nil
}

// NewProvider returns the Provider for lang, or Stub{} if lang is
// unrecognized or LanguageUndefined.
func NewProvider(lang Language) Provider {
	switch lang {
	case LanguageJSON:
		return &RuleProvider{Rules: jsonRules()}
	case LanguageGo:
		return &RuleProvider{Rules: goRules()}
	case LanguageGitCommit:
		return &RuleProvider{Rules: gitCommitRules()}
	default:
		return Stub{}
	}
}
