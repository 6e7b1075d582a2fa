package rules

// The tables below are built once and never handed out directly; the
// accessors return deep copies so no caller can change them.
var (
	baseTable       = newBaseTable()
	strictTable     = newStrictTable()
	relaxationTable = newRelaxationTable()
)

// Base returns a copy of the shared rule set every preset starts from.
func Base() Table { return baseTable.Clone() }

// StrictOverlay returns a copy of the rules the strict preset tightens.
func StrictOverlay() Table { return strictTable.Clone() }

// Relaxation returns a copy of the rules the relaxed preset turns off.
func Relaxation() Table { return relaxationTable.Clone() }

type obj = map[string]any

func newBaseTable() Table {
	return Table{
		"@typescript-eslint/explicit-function-return-type": Off(),
		"@typescript-eslint/no-explicit-any":               Warn(),
		"react/react-in-jsx-scope":                         Off(),
		"react/prop-types":                                 Off(),
		"import/order":                                     Off(),
		"import/no-unresolved":                             Error(),
		"import/extensions": With(SeverityError, "ignorePackages", obj{
			"js":  "never",
			"jsx": "never",
			"ts":  "never",
			"tsx": "never",
		}),
		"no-plusplus":                         Off(),
		"no-shadow":                           Off(),
		"react/require-default-props":         Off(),
		"react/jsx-indent-props":              With(SeverityError, 4),
		"react/function-component-definition": Off(),
		"react/jsx-indent":                    With(SeverityError, 4),
		"react/jsx-closing-tag-location":      Error(),
		"react/jsx-filename-extension": With(SeverityWarn, obj{
			"extensions": []any{".tsx", ".ts"},
		}),
		"import/no-cycle":           Warn(),
		"jsx-a11y/anchor-is-valid":  Off(),
		"no-console":                Warn(),
		"no-debugger":               Warn(),
		"no-undef":                  Error(),
		"quotes":                    With(SeverityError, "single"),
		"no-duplicate-imports":      Error(),
		"comma-spacing":             Error(),
		"array-bracket-spacing":     With(SeverityError, "never"),
		"semi":                      With(SeverityError, "always"),
		"react/jsx-key":             Off(),
		"linebreak-style":           Off(),
		"object-curly-spacing":      With(SeverityError, "always"),
		"arrow-body-style":          Off(),
		"indent":                    With(SeverityError, 4, obj{"SwitchCase": 1}),
		"no-trailing-spaces":        Off(),
		"import/imports-first":      Off(),
		"no-unused-vars":            Off(),
		"@typescript-eslint/no-unused-vars": With(SeverityWarn, obj{
			"argsIgnorePattern": "^_",
		}),
		"space-before-function-paren": Off(),
		"func-names":                  Off(),
		"new-cap":                     Off(),
		"max-len":                     With(SeverityError, 260),
		"no-param-reassign":           With(SeverityError, obj{"props": false}),
		"no-restricted-syntax": With(SeverityWarn,
			"ForInStatement",
			"LabeledStatement",
			"WithStatement",
		),
		"class-methods-use-this":                 Off(),
		"comma-dangle":                           With(SeverityError, "never"),
		"no-underscore-dangle":                   Off(),
		"prefer-destructuring":                   Off(),
		"import/no-named-as-default":             Off(),
		"@typescript-eslint/ban-types":           Off(),
		"import/prefer-default-export":           Off(),
		"@typescript-eslint/no-empty-object-type": Off(),
		"object-curly-newline": With(SeverityError, obj{
			"ObjectExpression": obj{"multiline": true, "consistent": true},
			"ObjectPattern":    obj{"multiline": true, "consistent": true},
		}),
		"space-infix-ops":            With(SeverityError, obj{"int32Hint": false}),
		"import/newline-after-import": With(SeverityError, obj{"count": 1}),
		"no-multi-spaces":            Error(),
		"key-spacing": With(SeverityError, obj{
			"beforeColon": false,
			"afterColon":  true,
		}),
		"prefer-const": With(SeverityError, obj{
			"destructuring":          "all",
			"ignoreReadBeforeAssign": true,
		}),
	}
}

func newStrictTable() Table {
	return Table{
		"@typescript-eslint/no-explicit-any": Error(),
		"no-console":                         Error(),
		"no-debugger":                        Error(),
		"@typescript-eslint/no-unused-vars": With(SeverityError, obj{
			"argsIgnorePattern": "^_",
		}),
		"import/no-cycle": Error(),
	}
}

func newRelaxationTable() Table {
	return Disable(
		"@typescript-eslint/no-explicit-any",
		"no-console",
		"import/no-cycle",
	)
}
