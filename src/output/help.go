package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpWidth = 64

var helpSections = []struct {
	title string
	lines []string
}{
	{"Usage:", []string{
		"apx-lint [options] [path ...]",
	}},
	{"Options:", []string{
		"--fix          Auto-fix linting errors",
		"--changed      Lint only files changed against the target branch",
		"--help, -h     Show this help message",
		"--version, -v  Show version number",
		"",
		"Any other --flag is passed through to ESLint.",
	}},
	{"Examples:", []string{
		`apx-lint                              # Lint default paths`,
		`apx-lint --fix                        # Lint and auto-fix default paths`,
		`apx-lint src/                         # Lint specific directory`,
		`apx-lint --fix "src/**/*.{ts,tsx}"    # Lint and fix with custom pattern`,
		`apx-lint --changed                    # Lint files changed on this branch`,
	}},
	{"Configuration:", []string{
		"Create .apxlintrc.json in your project root to customize default paths:",
		"{",
		`  "paths": ["src/**/*.{ts,tsx}", "lib/**/*.{ts,tsx}"]`,
		"}",
		"An \"apxlint\" field in package.json works too.",
	}},
	{"Ignore Patterns:", []string{
		"Create ignore.apxlintrc or .apxlintignore to exclude files:",
		"node_modules/",
		"dist/",
		"build/",
		"*.min.js",
	}},
	{"Environment:", []string{
		"APX_LINT_ESLINT         Path to the eslint executable",
		"APX_LINT_LOG_LEVEL      debug, info, warn or error",
		"APX_LINT_TARGET_BRANCH  Branch diffed by --changed",
		"APX_LINT_NO_COLOR       Disable colored output",
	}},
}

// Help prints the usage screen.
func (p *Printer) Help() {
	title := p.style().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorCyan).
		Foreground(colorCyan).
		Width(helpWidth).
		Align(lipgloss.Center).
		Render(ProjectName + " CLI")

	var b strings.Builder
	b.WriteString("\n" + title + "\n")
	for _, sec := range helpSections {
		b.WriteString("\n" + p.Heading(sec.title) + "\n")
		for _, line := range sec.lines {
			if line == "" {
				b.WriteString("\n")
				continue
			}
			b.WriteString("  " + line + "\n")
		}
	}
	fmt.Fprintln(p.Writer, b.String())
}
