package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/appna-io/apx-linter/src/config"
	"github.com/appna-io/apx-linter/src/lint"
	"github.com/appna-io/apx-linter/src/logging"
	"github.com/appna-io/apx-linter/src/output"
	"github.com/appna-io/apx-linter/src/version"
)

// lintArgs is the classified apx-lint command line. Flags are matched
// anywhere in argv; there is no "--" terminator.
type lintArgs struct {
	help    bool
	version bool
	fix     bool
	changed bool
	// passthrough holds unrecognised --flags, forwarded to ESLint as is.
	passthrough []string
	paths       []string
}

func parseLintArgs(args []string) lintArgs {
	var la lintArgs
	for _, arg := range args {
		switch {
		case arg == "--help" || arg == "-h":
			la.help = true
		case arg == "--version" || arg == "-v":
			la.version = true
		case arg == "--fix":
			la.fix = true
		case arg == "--changed":
			la.changed = true
		case strings.HasPrefix(arg, "--"):
			la.passthrough = append(la.passthrough, arg)
		default:
			la.paths = append(la.paths, arg)
		}
	}
	return la
}

// NewLintCommand builds the apx-lint root command. Cobra's flag parsing
// is off: unknown flags belong to ESLint and must survive untouched.
func NewLintCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "apx-lint [options] [path ...]",
		Short:              "Run ESLint with the APX configuration",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runLint,
	}
}

// loadRuntime never fails; a broken environment falls back to defaults.
func loadRuntime() *config.Runtime {
	rt, err := config.LoadRuntime()
	if err != nil {
		logging.Get("cli").Warn().Err(err).Msg("ignoring runtime settings")
		return &config.Runtime{LogLevel: logging.DefaultLevel.String()}
	}
	return rt
}

func runLint(cmd *cobra.Command, args []string) error {
	rt := loadRuntime()
	color := output.UseColor(rt.NoColor)
	logging.Setup(rt.LogLevel, cmd.ErrOrStderr(), !color)
	log := logging.Get("cli")

	p := output.NewPrinter(cmd.OutOrStdout(), color)
	la := parseLintArgs(args)

	// Help and version never look at the project.
	if la.help {
		p.Help()
		return nil
	}
	if la.version {
		p.Version(version.Resolve())
		return nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings := config.LoadSettings(dir)
	ignore, ignoreSource := config.LoadIgnorePatterns(dir)
	paths := config.ResolvePaths(la.paths, settings)
	if ignoreSource != "" {
		log.Debug().Str("file", ignoreSource).Int("patterns", len(ignore)).Msg("ignore patterns loaded")
	}

	if la.changed {
		if len(la.paths) > 0 {
			log.Debug().Msg("--changed has no effect with explicit paths")
		} else {
			delta := &lint.Delta{RootDir: dir, TargetBranch: rt.TargetBranch}
			changedSet, err := delta.ChangedFiles(cmd.Context())
			if err != nil {
				log.Warn().Err(err).Msg("delta detection failed, linting all paths")
			}
			if changedSet != nil {
				paths = lint.FilterChanged(dir, paths, changedSet)
				if len(paths) == 0 {
					p.Notice("No changed files to lint.")
					return nil
				}
			}
		}
	}

	inv := lint.Invocation{
		Fix:            la.fix,
		Passthrough:    la.passthrough,
		IgnorePatterns: ignore,
		Paths:          paths,
	}

	p.Header(la.fix)
	p.RunSummary(la.fix, paths, len(ignore))
	p.Running()

	runner := lint.NewRunner(dir, rt.ESLint)
	runner.Stdin = cmd.InOrStdin()
	runner.Stdout = cmd.OutOrStdout()
	runner.Stderr = cmd.ErrOrStderr()

	code, err := runner.Run(cmd.Context(), inv.Args())
	if err != nil {
		return err
	}

	p.Footer(code == ExitSuccess)
	if code != ExitSuccess {
		return &ExitError{Code: code}
	}
	return nil
}

// ExecuteLint runs apx-lint with the process arguments and returns the
// exit code.
func ExecuteLint() int {
	root := NewLintCommand()
	return execute(root, os.Args[1:], os.Stdout, output.UseColor(loadRuntime().NoColor))
}
