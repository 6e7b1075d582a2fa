package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLintArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want lintArgs
	}{
		{
			name: "empty",
			want: lintArgs{},
		},
		{
			name: "fix and paths",
			args: []string{"--fix", "src/", "lib/**/*.ts"},
			want: lintArgs{fix: true, paths: []string{"src/", "lib/**/*.ts"}},
		},
		{
			name: "short help and version",
			args: []string{"-v", "-h"},
			want: lintArgs{help: true, version: true},
		},
		{
			name: "unknown flags pass through",
			args: []string{"--quiet", "src/", "--max-warnings=0", "--changed"},
			want: lintArgs{
				changed:     true,
				passthrough: []string{"--quiet", "--max-warnings=0"},
				paths:       []string{"src/"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLintArgs(tt.args))
		})
	}
}

type result struct {
	code   int
	stdout string
	stderr string
}

func run(root *cobra.Command, args ...string) result {
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(""))
	code := execute(root, args, &errOut, false)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

// project creates a project directory, makes it the working directory
// and installs a fake eslint that records its arguments to eslint-args
// and exits with code.
func project(t *testing.T, code int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}

	tool := filepath.Join(t.TempDir(), "eslint")
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > eslint-args\nexit " + strconv.Itoa(code) + "\n"
	require.NoError(t, os.WriteFile(tool, []byte(script), 0o755))

	t.Setenv("APX_LINT_ESLINT", tool)
	t.Setenv("APX_LINT_NO_COLOR", "true")
	t.Setenv("APX_LINT_LOG_LEVEL", "")
	t.Setenv("APX_LINT_TARGET_BRANCH", "")

	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// toolArgs returns what the fake eslint received, or nil if it never ran.
func toolArgs(t *testing.T, dir string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "eslint-args"))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestLint_HelpAndVersionSkipTool(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		notWant string
	}{
		{"help", []string{"--help"}, "Usage:", "APX Lint v"},
		{"short help", []string{"--fix", "-h"}, "Usage:", "APX Lint v"},
		{"version", []string{"--version"}, "APX Lint v", "Usage:"},
		{"short version", []string{"src/", "-v"}, "APX Lint v", "Usage:"},
		{"help wins", []string{"-v", "-h"}, "Usage:", "APX Lint v"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := project(t, 2)
			writeFile(t, dir, ".apxlintrc.json", `{"paths": ["lib/"]}`)

			res := run(NewLintCommand(), tt.args...)
			assert.Equal(t, ExitSuccess, res.code)
			assert.Contains(t, res.stdout, tt.want)
			assert.NotContains(t, res.stdout, tt.notWant)
			assert.Nil(t, toolArgs(t, dir))
		})
	}
}

func TestLint_PathPrecedence(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		dir := project(t, 0)
		res := run(NewLintCommand())
		require.Equal(t, ExitSuccess, res.code, res.stderr)
		assert.Equal(t, []string{"src/**/*.{js,jsx,ts,tsx}"}, toolArgs(t, dir))
		assert.Contains(t, res.stdout, "Linting completed!")
	})

	t.Run("settings file", func(t *testing.T) {
		dir := project(t, 0)
		writeFile(t, dir, ".apxlintrc.json", `{"paths": ["lib/", "app/"]}`)
		run(NewLintCommand())
		assert.Equal(t, []string{"lib/", "app/"}, toolArgs(t, dir))
	})

	t.Run("package.json field", func(t *testing.T) {
		dir := project(t, 0)
		writeFile(t, dir, "package.json", `{"name": "x", "apxlint": {"paths": "web/"}}`)
		run(NewLintCommand())
		assert.Equal(t, []string{"web/"}, toolArgs(t, dir))
	})

	t.Run("cli wins", func(t *testing.T) {
		dir := project(t, 0)
		writeFile(t, dir, ".apxlintrc.json", `{"paths": ["lib/"]}`)
		run(NewLintCommand(), "other/")
		assert.Equal(t, []string{"other/"}, toolArgs(t, dir))
	})
}

func TestLint_ArgumentOrder(t *testing.T) {
	dir := project(t, 0)
	writeFile(t, dir, ".apxlintignore", "# build output\nnode_modules/\n\n  dist/  \n")

	res := run(NewLintCommand(), "src/", "--quiet", "--fix")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, []string{
		"--fix", "--quiet",
		"--ignore-pattern", "node_modules/",
		"--ignore-pattern", "dist/",
		"src/",
	}, toolArgs(t, dir))
	assert.Contains(t, res.stdout, "Mode: Fix")
	assert.Contains(t, res.stdout, "Ignoring: 2 pattern(s)")
	assert.Contains(t, res.stdout, "Auto-fixing Issues")
}

func TestLint_IgnoreJSONPreferred(t *testing.T) {
	dir := project(t, 0)
	writeFile(t, dir, "ignore.apxlintrc", `{"ignore": ["coverage/"]}`)
	writeFile(t, dir, ".apxlintignore", "dist/\n")

	run(NewLintCommand(), "src/")
	assert.Equal(t, []string{"--ignore-pattern", "coverage/", "src/"}, toolArgs(t, dir))
}

func TestLint_RelaysExitCode(t *testing.T) {
	for _, code := range []int{1, 2} {
		dir := project(t, code)
		res := run(NewLintCommand(), "src/")
		assert.Equal(t, code, res.code)
		assert.NotNil(t, toolArgs(t, dir))
		assert.Contains(t, res.stdout, "Linting completed with issues")
		assert.NotContains(t, res.stderr, "Fatal error")
	}
}

func TestLint_LaunchFailure(t *testing.T) {
	project(t, 0)
	t.Setenv("APX_LINT_ESLINT", filepath.Join(t.TempDir(), "no-such-eslint"))

	res := run(NewLintCommand(), "src/")
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "Fatal error: launching eslint")
	assert.NotContains(t, res.stdout, "Linting completed")
}

func TestLint_Changed(t *testing.T) {
	dir := project(t, 0)

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	writeFile(t, dir, ".gitignore", "eslint-args\n")
	writeFile(t, dir, "src/old.ts", "export {}\n")
	_, err = wt.Add(".")
	require.NoError(t, err)
	_, err = wt.Commit("init", &git.CommitOptions{
		Author: &object.Signature{Name: "t", Email: "t@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	res := run(NewLintCommand(), "--changed")
	assert.Equal(t, ExitSuccess, res.code)
	assert.Contains(t, res.stdout, "No changed files to lint.")
	assert.Nil(t, toolArgs(t, dir))

	writeFile(t, dir, "src/new.tsx", "export {}\n")
	writeFile(t, dir, "README.md", "docs\n")

	res = run(NewLintCommand(), "--changed")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, []string{"src/new.tsx"}, toolArgs(t, dir))
}

func TestLint_ChangedWithDirectoryPaths(t *testing.T) {
	dir := project(t, 0)
	writeFile(t, dir, ".apxlintrc.json", `{"paths": ["src/"]}`)
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	writeFile(t, dir, ".gitignore", "eslint-args\n")
	writeFile(t, dir, "src/new.ts", "export {}\n")

	res := run(NewLintCommand(), "--changed")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.NotContains(t, res.stdout, "No changed files")
	assert.Equal(t, []string{"src/new.ts"}, toolArgs(t, dir))
}

func TestLint_BlankConfiguredPathUsesDefault(t *testing.T) {
	dir := project(t, 0)
	writeFile(t, dir, ".apxlintrc.json", `{"paths": ""}`)
	run(NewLintCommand())
	assert.Equal(t, []string{"src/**/*.{js,jsx,ts,tsx}"}, toolArgs(t, dir))
}

func TestLint_ChangedOutsideRepoLintsEverything(t *testing.T) {
	dir := project(t, 0)
	run(NewLintCommand(), "--changed")
	assert.Equal(t, []string{"src/**/*.{js,jsx,ts,tsx}"}, toolArgs(t, dir))
}

func TestConfig_Show(t *testing.T) {
	t.Setenv("APX_LINT_LOG_LEVEL", "")

	res := run(NewConfigCommand(), "show")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &cfg))
	rules := cfg["rules"].(map[string]any)
	assert.Equal(t, "warn", rules["@typescript-eslint/no-explicit-any"])

	res = run(NewConfigCommand(), "show", "strict", "--format", "yaml")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "no-console: error")

	res = run(NewConfigCommand(), "show", "--legacy")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, `"extends"`)
}

func TestConfig_ShowErrors(t *testing.T) {
	tests := [][]string{
		{"show", "nope"},
		{"show", "strict", "--legacy"},
		{"show", "--format", "xml"},
	}
	for _, args := range tests {
		res := run(NewConfigCommand(), args...)
		assert.Equal(t, ExitFailure, res.code, args)
		assert.Contains(t, res.stderr, "Fatal error:", args)
	}
}

func TestConfig_Build(t *testing.T) {
	dir := t.TempDir()
	rulesFile := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(rulesFile, []byte("eqeqeq: error\nmax-len: warn\n"), 0o644))

	res := run(NewConfigCommand(), "build",
		"--strict",
		"--ignore-rule", "no-console",
		"--ignore-rule", "import/no-cycle",
		"--rules-file", rulesFile,
		"--rule", `max-len=["error", 120]`,
		"--rule", "import/no-cycle=1",
	)
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	var cfg struct {
		Rules map[string]any `json:"rules"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &cfg))
	assert.Equal(t, "off", cfg.Rules["no-console"])
	assert.Equal(t, "warn", cfg.Rules["import/no-cycle"], "explicit rules beat ignored ones")
	assert.Equal(t, "error", cfg.Rules["eqeqeq"])
	assert.Equal(t, []any{"error", float64(120)}, cfg.Rules["max-len"], "flags beat the rules file")
	assert.Equal(t, "error", cfg.Rules["no-debugger"], "strict overlay applied")
}

func TestConfig_BuildErrors(t *testing.T) {
	tests := [][]string{
		{"build", "--rule", "no-console"},
		{"build", "--rule", "=off"},
		{"build", "--rule", "no-console="},
		{"build", "--rule", "no-console=loud"},
		{"build", "--rules-file", filepath.Join(t.TempDir(), "missing.json")},
	}
	for _, args := range tests {
		res := run(NewConfigCommand(), args...)
		assert.Equal(t, ExitFailure, res.code, args)
	}
}

func TestConfig_Rules(t *testing.T) {
	res := run(NewConfigCommand(), "rules")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, sortedByID(lines))
	assert.Contains(t, res.stdout, "import/no-unresolved")
	assert.Regexp(t, `(?m)^no-debugger\s+warn$`, res.stdout)

	res = run(NewConfigCommand(), "rules", "--strict")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Regexp(t, `(?m)^no-debugger\s+error$`, res.stdout)
	assert.Regexp(t, `(?m)^@typescript-eslint/no-explicit-any\s+error$`, res.stdout)
}

func sortedByID(lines []string) bool {
	prev := ""
	for _, l := range lines {
		id := strings.Fields(l)[0]
		if id < prev {
			return false
		}
		prev = id
	}
	return true
}
