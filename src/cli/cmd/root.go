package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/appna-io/apx-linter/src/logging"
	"github.com/appna-io/apx-linter/src/output"
)

// NewConfigCommand builds the apx-config command tree.
func NewConfigCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "apx-config",
		Short: "Inspect and generate APX ESLint configurations",
		Long: `apx-config prints the APX ESLint presets and builds custom
configurations from the shared base rule set.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			rt := loadRuntime()
			logging.Setup(rt.LogLevel, cmd.ErrOrStderr(), !output.UseColor(rt.NoColor))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newShowCmd(),
		newBuildCmd(),
		newRulesCmd(),
		newVersionCmd(),
	)
	return root
}

// ExecuteConfig runs apx-config with the process arguments and returns
// the exit code.
func ExecuteConfig() int {
	return execute(NewConfigCommand(), os.Args[1:], os.Stderr, output.UseColor(loadRuntime().NoColor))
}
