package lint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/appna-io/apx-linter/src/logging"
)

// ErrLaunch marks a failure to start ESLint at all, as opposed to ESLint
// running and reporting problems.
var ErrLaunch = errors.New("launching eslint")

// Runner executes ESLint as a child process sharing the caller's
// terminal.
type Runner struct {
	// Dir is the project directory; ESLint runs there.
	Dir string
	// ESLint overrides executable discovery when set.
	ESLint string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a Runner wired to the process's standard streams.
func NewRunner(dir, eslint string) *Runner {
	return &Runner{
		Dir:    dir,
		ESLint: eslint,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Command resolves the executable and any arguments that must precede
// ESLint's own. Lookup order: the explicit override, the project's
// node_modules/.bin/eslint, eslint on PATH, then "npx eslint".
func (r *Runner) Command() (string, []string) {
	if r.ESLint != "" {
		return r.ESLint, nil
	}
	local := filepath.Join(r.Dir, "node_modules", ".bin", "eslint")
	if isExecutable(local) {
		return local, nil
	}
	if path, err := exec.LookPath("eslint"); err == nil {
		return path, nil
	}
	return "npx", []string{"eslint"}
}

// Run starts ESLint with args and waits for it. The returned code is
// ESLint's exit status; a child killed by a signal reports 1. The error
// is non-nil only when the process could not be started, and then wraps
// ErrLaunch.
func (r *Runner) Run(ctx context.Context, args []string) (int, error) {
	log := logging.Get("runner")

	name, prefix := r.Command()
	argv := append(append([]string(nil), prefix...), args...)
	log.Debug().Str("exec", name).Str("args", strings.Join(argv, " ")).Str("dir", r.Dir).Msg("starting eslint")

	cmd := exec.CommandContext(ctx, name, argv...)
	cmd.Dir = r.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}
		log.Debug().Int("code", code).Msg("eslint exited")
		return code, nil
	}

	return 1, fmt.Errorf("%w: %s: %v", ErrLaunch, name, err)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
