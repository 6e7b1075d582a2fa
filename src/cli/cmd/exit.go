package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/appna-io/apx-linter/src/output"
)

// Exit codes produced by the wrapper itself. Anything else is ESLint's
// own status, relayed unchanged.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitError carries a child process exit code up to main without
// printing anything.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// execute runs root with args and maps the outcome to a process exit
// code. Errors other than ExitError are reported as fatal on errOut.
func execute(root *cobra.Command, args []string, errOut io.Writer, color bool) int {
	// cobra reads os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}

	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}

	output.NewPrinter(errOut, color).Fatal(err)
	return ExitFailure
}
