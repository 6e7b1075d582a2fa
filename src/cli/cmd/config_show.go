package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appna-io/apx-linter/src/preset"
)

func newShowCmd() *cobra.Command {
	var (
		format string
		legacy bool
	)

	cmd := &cobra.Command{
		Use:       "show [preset]",
		Short:     "Print a preset configuration",
		Long:      "Print one of the bundled presets: recommended (default), strict or relaxed.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: preset.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := preset.ParseFormat(format)
			if err != nil {
				return err
			}

			name := preset.NameRecommended
			if len(args) == 1 {
				name = args[0]
			}

			if legacy {
				if name != preset.NameRecommended {
					return fmt.Errorf("--legacy is only available for the %s preset", preset.NameRecommended)
				}
				return preset.Encode(cmd.OutOrStdout(), preset.Legacy(), f)
			}

			cfg, ok := preset.Named(name)
			if !ok {
				return fmt.Errorf("unknown preset %q", name)
			}
			return preset.Encode(cmd.OutOrStdout(), cfg, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml or toml")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "print the eslintrc-style object")
	return cmd
}
