package config

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// rulesRelPath is where the RuleSet lives under the user's XDG config
// home, matching the teacher's "~/.config/<app>/config.yaml" layout.
const rulesRelPath = "aesop/rules.yaml"

// LoadRuleSet loads the RuleSet from the user's config directory. A
// missing file is not an error: the zero RuleSet (no overrides) is
// returned.
func LoadRuleSet() (RuleSet, error) {
	path, err := xdg.ConfigFile(rulesRelPath)
	if err != nil {
		return nil, errors.Wrap(err, "xdg.ConfigFile")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var rules RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if err := rules.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validating %s", path)
	}
	return rules, nil
}
