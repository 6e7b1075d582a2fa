package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/appna-io/apx-linter/src/logging"
	"github.com/appna-io/apx-linter/src/preset"
	"github.com/appna-io/apx-linter/src/rules"
)

func newBuildCmd() *cobra.Command {
	var (
		strict      bool
		ignoreRules []string
		ruleFlags   []string
		rulesFile   string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a configuration from the base rules",
		Long: `Build a configuration from the base rule set.

Precedence, lowest to highest: base rules, --strict overlay, --ignore-rule,
then --rules-file and --rule. Rule values are YAML, so off, 2 and
'["error", 120]' are all accepted.`,
		Example: `  apx-config build --strict --ignore-rule no-console
  apx-config build --rule 'max-len=["error", 120]' --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := preset.ParseFormat(format)
			if err != nil {
				return err
			}

			fromFile := rules.Table{}
			if rulesFile != "" {
				fromFile, err = loadRulesFile(rulesFile)
				if err != nil {
					return err
				}
			}

			fromFlags := rules.Table{}
			for _, raw := range ruleFlags {
				id, v, err := parseRuleFlag(raw)
				if err != nil {
					return err
				}
				fromFlags[id] = v
			}

			overrides := rules.Merge(fromFile, fromFlags)
			logging.Get("build").Debug().
				Bool("strict", strict).
				Int("ignored", len(ignoreRules)).
				Int("overrides", len(overrides)).
				Msg("building config")

			cfg := preset.Build(preset.Options{
				Rules:       overrides,
				IgnoreRules: ignoreRules,
				Strict:      strict,
			})
			return preset.Encode(cmd.OutOrStdout(), cfg, f)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "apply the strict overlay")
	cmd.Flags().StringArrayVar(&ignoreRules, "ignore-rule", nil, "turn a rule off (repeatable)")
	cmd.Flags().StringArrayVar(&ruleFlags, "rule", nil, "set a rule, as id=value (repeatable)")
	cmd.Flags().StringVar(&rulesFile, "rules-file", "", "JSON or YAML file mapping rule ids to values")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml or toml")
	return cmd
}

// parseRuleFlag splits "id=value" and decodes value as a rule value.
func parseRuleFlag(raw string) (string, rules.Value, error) {
	id, value, ok := strings.Cut(raw, "=")
	id = strings.TrimSpace(id)
	if !ok || id == "" || strings.TrimSpace(value) == "" {
		return "", rules.Value{}, fmt.Errorf("invalid --rule %q: want id=value", raw)
	}
	var v rules.Value
	if err := yaml.Unmarshal([]byte(value), &v); err != nil {
		return "", rules.Value{}, fmt.Errorf("invalid --rule %q: %w", raw, err)
	}
	return id, v, nil
}

func loadRulesFile(path string) (rules.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var t rules.Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	return t, nil
}
