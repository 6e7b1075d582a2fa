package preset

import (
	"github.com/appna-io/apx-linter/src/rules"
)

// LegacyConfig is the eslintrc-style object for projects still on
// .eslintrc. It extends the upstream shareable configs instead of
// registering plugins itself.
type LegacyConfig struct {
	Extends []string      `json:"extends"`
	Rules   rules.Table   `json:"rules"`
	Configs LegacyConfigs `json:"configs"`
}

type LegacyConfigs struct {
	Recommended LegacyRules `json:"recommended"`
}

type LegacyRules struct {
	Rules rules.Table `json:"rules"`
}

// Legacy returns the eslintrc-style config built on the base rule set.
func Legacy() LegacyConfig {
	return LegacyConfig{
		Extends: []string{
			"eslint:recommended",
			"plugin:@typescript-eslint/recommended",
			"plugin:react/recommended",
			"plugin:react-hooks/recommended",
			"plugin:jsx-a11y/recommended",
			"plugin:import/errors",
			"plugin:import/warnings",
			"plugin:import/typescript",
			"airbnb",
		},
		Rules:   legacyRules(),
		Configs: LegacyConfigs{Recommended: LegacyRules{Rules: legacyRules()}},
	}
}

// legacyRules is the base set plus no-tabs off, which the eslintrc
// object has always carried.
func legacyRules() rules.Table {
	return rules.Merge(rules.Base(), rules.Disable("no-tabs"))
}

// Map returns l as plain data for the YAML and TOML encoders.
func (l LegacyConfig) Map() map[string]any {
	return map[string]any{
		"extends": stringSlice(l.Extends),
		"rules":   l.Rules.Raw(),
		"configs": map[string]any{
			"recommended": map[string]any{
				"rules": l.Configs.Recommended.Rules.Raw(),
			},
		},
	}
}
