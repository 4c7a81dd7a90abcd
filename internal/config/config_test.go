package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aesop-editor/aesop/internal/syntax"
)

func TestConfigForPath(t *testing.T) {
	testCases := []struct {
		name           string
		ruleSet        RuleSet
		path           string
		expectedConfig Config
	}{
		{
			name:           "no rules, default config",
			ruleSet:        nil,
			path:           "test.go",
			expectedConfig: DefaultConfig(),
		},
		{
			name: "rule matches, set syntax language",
			ruleSet: []Rule{
				{
					Name:    "json",
					Pattern: "**/*.json",
					Config:  map[string]interface{}{"syntaxLanguage": "json"},
				},
				{
					Name:    "mismatched rule",
					Pattern: "**/*.txt",
					Config:  map[string]interface{}{"syntaxLanguage": "undefined"},
				},
			},
			path: "src/test.json",
			expectedConfig: Config{
				SyntaxLanguage: syntax.LanguageJSON,
				TabSize:        DefaultTabSize,
				TabExpand:      DefaultTabExpand,
				AutoIndent:     DefaultAutoIndent,
			},
		},
		{
			name: "later rule overrides earlier rule for same key",
			ruleSet: []Rule{
				{Name: "a", Pattern: "*.go", Config: map[string]interface{}{"tabSize": 2}},
				{Name: "b", Pattern: "*.go", Config: map[string]interface{}{"tabSize": 8}},
			},
			path: "main.go",
			expectedConfig: Config{
				SyntaxLanguage: DefaultSyntaxLanguage,
				TabSize:        8,
				TabExpand:      DefaultTabExpand,
				AutoIndent:     DefaultAutoIndent,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.ruleSet.ConfigForPath(tc.path)
			assert.Equal(t, tc.expectedConfig, c)
		})
	}
}

func TestRuleSetValidateRejectsBadPattern(t *testing.T) {
	rs := RuleSet{{Name: "bad", Pattern: "["}}
	assert.Error(t, rs.Validate())
}

func TestParseSettingsAppliesRecognizedKeys(t *testing.T) {
	input := strings.Join([]string{
		"# a comment",
		"",
		"tab_width=2",
		"expand_tabs=false",
		"theme_name = solarized",
		"unknown_key=ignored",
	}, "\n")

	s, err := ParseSettings(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, s.TabWidth)
	assert.False(t, s.ExpandTabs)
	assert.Equal(t, "solarized", s.ThemeName)
}

func TestParseSettingsRejectsMalformedLine(t *testing.T) {
	_, err := ParseSettings(strings.NewReader("not-a-key-value-line"))
	assert.Error(t, err)
}

func TestParseSettingsRejectsInvalidBool(t *testing.T) {
	_, err := ParseSettings(strings.NewReader("line_numbers=maybe"))
	assert.Error(t, err)
}

func TestDefaultSettingsAppliedWithEmptyInput(t *testing.T) {
	s, err := ParseSettings(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}
