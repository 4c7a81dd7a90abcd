// Package config implements the two configuration surfaces an editor
// instance consults: a glob-pattern RuleSet for per-file overrides,
// and a flat key=value Settings file for process-wide options.
package config

import (
	"github.com/gobwas/glob"
	"github.com/pkg/errors"

	"github.com/aesop-editor/aesop/internal/syntax"
)

// Default values applied when no rule overrides them.
const (
	DefaultSyntaxLanguage = syntax.LanguageUndefined
	DefaultTabSize        = 4
	DefaultTabExpand      = false
	DefaultAutoIndent     = false
)

// Config is the resolved set of per-file options after applying every
// matching Rule, later matching rules overriding earlier ones for the
// same key.
type Config struct {
	SyntaxLanguage syntax.Language
	TabSize        int
	TabExpand      bool
	AutoIndent     bool
}

// DefaultConfig returns the Config used when no rules match a path.
func DefaultConfig() Config {
	return Config{
		SyntaxLanguage: DefaultSyntaxLanguage,
		TabSize:        DefaultTabSize,
		TabExpand:      DefaultTabExpand,
		AutoIndent:     DefaultAutoIndent,
	}
}

// Rule is one entry of a RuleSet: if Pattern matches a file path, the
// keys present in its Config map override the running Config.
type Rule struct {
	Name    string                 `yaml:"name"`
	Pattern string                 `yaml:"pattern"`
	Config  map[string]interface{} `yaml:"config"`
}

// RuleSet is an ordered list of Rules, evaluated in order against a
// candidate path; every matching rule's keys are applied, later rules
// overriding earlier ones for the same key.
type RuleSet []Rule

// Validate compiles every rule's glob pattern, returning the first
// error encountered.
func (rs RuleSet) Validate() error {
	for _, r := range rs {
		if _, err := glob.Compile(r.Pattern, '/'); err != nil {
			return errors.Wrapf(err, "invalid pattern in rule %q", r.Name)
		}
	}
	return nil
}

// ConfigForPath resolves the Config that applies to path by starting
// from DefaultConfig and layering every matching rule on top in order.
func (rs RuleSet) ConfigForPath(path string) Config {
	c := DefaultConfig()
	for _, r := range rs {
		g, err := glob.Compile(r.Pattern, '/')
		if err != nil || !g.Match(path) {
			continue
		}
		applyRuleConfig(&c, r.Config)
	}
	return c
}

func applyRuleConfig(c *Config, ruleConfig map[string]interface{}) {
	if v, ok := ruleConfig["syntaxLanguage"].(string); ok {
		c.SyntaxLanguage = syntax.Language(v)
	}
	if v, ok := ruleConfig["tabSize"].(int); ok {
		c.TabSize = v
	}
	if v, ok := ruleConfig["tabExpand"].(bool); ok {
		c.TabExpand = v
	}
	if v, ok := ruleConfig["autoIndent"].(bool); ok {
		c.AutoIndent = v
	}
}
