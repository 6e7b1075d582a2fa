package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appna-io/apx-linter/src/preset"
)

func newRulesCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List base rules with their effective severity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := preset.Build(preset.Options{Strict: strict}).Rules
			ids := table.IDs()

			width := 0
			for _, id := range ids {
				width = max(width, len(id))
			}
			for _, id := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "%-*s  %s\n", width, id, table[id].Severity)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "show severities after the strict overlay")
	return cmd
}
