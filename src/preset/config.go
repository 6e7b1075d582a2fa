// Package preset builds ESLint flat-config objects from the shared rule
// set and exposes the named presets shipped with apx-linter.
package preset

import (
	"github.com/appna-io/apx-linter/src/rules"
)

// Config is an ESLint flat-config object. Plugins and the parser are
// referenced by npm package name; the consuming eslint.config.js resolves
// them.
type Config struct {
	LanguageOptions LanguageOptions   `json:"languageOptions"`
	Plugins         map[string]string `json:"plugins"`
	Rules           rules.Table       `json:"rules"`
	Settings        Settings          `json:"settings"`
}

// LanguageOptions configures how ESLint parses source files.
type LanguageOptions struct {
	Parser        string            `json:"parser"`
	ParserOptions ParserOptions     `json:"parserOptions"`
	Globals       map[string]string `json:"globals"`
}

type ParserOptions struct {
	EcmaVersion  string       `json:"ecmaVersion"`
	SourceType   string       `json:"sourceType"`
	EcmaFeatures EcmaFeatures `json:"ecmaFeatures"`
}

type EcmaFeatures struct {
	JSX bool `json:"jsx"`
}

// Settings is shared plugin configuration.
type Settings struct {
	React    ReactSettings    `json:"react"`
	Resolver ResolverSettings `json:"import/resolver"`
}

type ReactSettings struct {
	Version string `json:"version"`
}

type ResolverSettings struct {
	TypeScript TypeScriptResolver `json:"typescript"`
	Node       NodeResolver       `json:"node"`
}

type TypeScriptResolver struct {
	AlwaysTryTypes bool   `json:"alwaysTryTypes"`
	Project        string `json:"project"`
}

type NodeResolver struct {
	Extensions []string `json:"extensions"`
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.LanguageOptions.Globals = cloneStrings(c.LanguageOptions.Globals)
	out.Plugins = cloneStrings(c.Plugins)
	out.Rules = c.Rules.Clone()
	out.Settings.Resolver.Node.Extensions = append([]string(nil), c.Settings.Resolver.Node.Extensions...)
	return out
}

// Map returns c as plain maps and slices, keyed the way ESLint expects.
// The YAML and TOML encoders work from this form.
func (c Config) Map() map[string]any {
	return map[string]any{
		"languageOptions": map[string]any{
			"parser": c.LanguageOptions.Parser,
			"parserOptions": map[string]any{
				"ecmaVersion": c.LanguageOptions.ParserOptions.EcmaVersion,
				"sourceType":  c.LanguageOptions.ParserOptions.SourceType,
				"ecmaFeatures": map[string]any{
					"jsx": c.LanguageOptions.ParserOptions.EcmaFeatures.JSX,
				},
			},
			"globals": stringMap(c.LanguageOptions.Globals),
		},
		"plugins": stringMap(c.Plugins),
		"rules":   c.Rules.Raw(),
		"settings": map[string]any{
			"react": map[string]any{
				"version": c.Settings.React.Version,
			},
			"import/resolver": map[string]any{
				"typescript": map[string]any{
					"alwaysTryTypes": c.Settings.Resolver.TypeScript.AlwaysTryTypes,
					"project":        c.Settings.Resolver.TypeScript.Project,
				},
				"node": map[string]any{
					"extensions": stringSlice(c.Settings.Resolver.Node.Extensions),
				},
			},
		},
	}
}

func cloneStrings(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func stringMap(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func stringSlice(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
