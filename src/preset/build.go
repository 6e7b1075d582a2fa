package preset

import (
	"github.com/appna-io/apx-linter/src/rules"
)

// Options customizes a build. The zero value reproduces the recommended
// preset.
type Options struct {
	// Rules replace base entries per identifier. Applied last.
	Rules rules.Table
	// IgnoreRules are forced off, dropping any options.
	IgnoreRules []string
	// Strict applies [rules.StrictOverlay] before IgnoreRules and Rules.
	Strict bool
}

// Build returns a new Config. Precedence, lowest to highest:
// base rules, strict overlay, IgnoreRules, Rules. Unknown rule identifiers
// are passed through; ESLint rejects them at lint time.
func Build(opts Options) Config {
	table := rules.Base()

	if opts.Strict {
		table = rules.Merge(table, rules.StrictOverlay())
	}

	for _, id := range opts.IgnoreRules {
		table[id] = rules.Off()
	}

	for id, v := range opts.Rules {
		table[id] = v.Clone()
	}

	return Config{
		LanguageOptions: defaultLanguageOptions(),
		Plugins:         defaultPlugins(),
		Rules:           table,
		Settings:        defaultSettings(),
	}
}

func defaultLanguageOptions() LanguageOptions {
	return LanguageOptions{
		Parser: "@typescript-eslint/parser",
		ParserOptions: ParserOptions{
			EcmaVersion:  "latest",
			SourceType:   "module",
			EcmaFeatures: EcmaFeatures{JSX: true},
		},
		Globals: defaultGlobals(),
	}
}

func defaultGlobals() map[string]string {
	names := []string{
		// browser
		"window", "document", "navigator", "console", "localStorage",
		"sessionStorage", "fetch",
		// DOM
		"HTMLElement", "HTMLDivElement", "HTMLInputElement", "HTMLButtonElement",
		"HTMLFormElement", "HTMLSpanElement", "HTMLAnchorElement", "HTMLImageElement",
		"Element", "Node", "NodeList", "Event", "MouseEvent", "KeyboardEvent",
		// node
		"process", "__dirname", "__filename", "module", "require", "exports",
		"global", "Buffer",
	}
	globals := make(map[string]string, len(names))
	for _, n := range names {
		globals[n] = "readonly"
	}
	return globals
}

func defaultPlugins() map[string]string {
	return map[string]string{
		"@typescript-eslint": "@typescript-eslint/eslint-plugin",
		"react":              "eslint-plugin-react",
		"react-hooks":        "eslint-plugin-react-hooks",
		"jsx-a11y":           "eslint-plugin-jsx-a11y",
		"import":             "eslint-plugin-import",
	}
}

func defaultSettings() Settings {
	return Settings{
		React: ReactSettings{Version: "detect"},
		Resolver: ResolverSettings{
			TypeScript: TypeScriptResolver{
				AlwaysTryTypes: true,
				Project:        "./tsconfig.json",
			},
			Node: NodeResolver{
				Extensions: []string{".js", ".jsx", ".ts", ".tsx"},
			},
		},
	}
}
