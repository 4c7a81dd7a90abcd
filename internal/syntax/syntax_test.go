package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aesop-editor/aesop/internal/rope"
)

func TestStubReturnsNoTokens(t *testing.T) {
	r, err := rope.NewFromString("package main")
	require.NoError(t, err)
	assert.Nil(t, Stub{}.TokensIntersectingRange(r, 0, r.Len()))
}

func TestGoRulesFindKeywordsAndStrings(t *testing.T) {
	text := `package main // comment` + "\n" + `var x = "hi"`
	r, err := rope.NewFromString(text)
	require.NoError(t, err)

	p := NewProvider(LanguageGo)
	tokens := p.TokensIntersectingRange(r, 0, r.Len())
	require.NotEmpty(t, tokens)

	var roles []TokenRole
	for _, tok := range tokens {
		roles = append(roles, tok.Role)
	}
	assert.Contains(t, roles, TokenRoleKeyword)
	assert.Contains(t, roles, TokenRoleComment)
	assert.Contains(t, roles, TokenRoleString)
}

func TestGitCommitRulesOnlyHighlightCommentLines(t *testing.T) {
	text := "subject line\n\n# comment explaining the change"
	r, err := rope.NewFromString(text)
	require.NoError(t, err)

	p := NewProvider(LanguageGitCommit)
	tokens := p.TokensIntersectingRange(r, 0, r.Len())
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenRoleComment, tokens[0].Role)
}
