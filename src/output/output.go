// Package output renders the wrapper's terminal chrome: the header and
// footer rules, the run summary box and the help screen. ESLint's own
// report goes straight to the terminal and never passes through here.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ProjectName prefixes every banner line.
const ProjectName = "APX Lint"

const ruleWidth = 60

// Palette, in ANSI indexes so the Ascii profile strips them cleanly.
var (
	colorCyan        = lipgloss.Color("6")
	colorGreen       = lipgloss.Color("2")
	colorBlue        = lipgloss.Color("4")
	colorYellow      = lipgloss.Color("3")
	colorRed         = lipgloss.Color("1")
	colorGreenBright = lipgloss.Color("10")
)

// Printer writes styled wrapper output.
type Printer struct {
	Writer io.Writer
	Color  bool

	r *lipgloss.Renderer
}

// NewPrinter creates a printer writing to w. With color off the renderer
// is pinned to the Ascii profile, so no escape sequences are emitted
// whatever the terminal claims.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI)
		}
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{Writer: w, Color: color, r: r}
}

func (p *Printer) style() lipgloss.Style {
	return p.r.NewStyle()
}

func (p *Printer) name() string {
	return p.style().Bold(true).Foreground(colorCyan).Render(ProjectName)
}

func (p *Printer) rule() string {
	return p.style().Foreground(colorGreenBright).Render(strings.Repeat("=", ruleWidth))
}

// Header prints the opening banner for a run.
func (p *Printer) Header(fix bool) {
	msg := "Checking Code Quality"
	if fix {
		msg = "Auto-fixing Issues"
	}
	green := p.style().Foreground(colorGreenBright)
	fmt.Fprintln(p.Writer, p.rule())
	fmt.Fprintln(p.Writer, green.Render("🚀 ")+p.name()+green.Render(" - "+msg))
	fmt.Fprintln(p.Writer, p.rule())
}

// Running announces that ESLint is about to start.
func (p *Printer) Running() {
	fmt.Fprintf(p.Writer, "\n%s\n\n", p.style().Bold(true).Foreground(colorCyan).Render("🔍 Running ESLint..."))
}

// Footer prints the closing banner. success reports a zero exit code.
func (p *Printer) Footer(success bool) {
	fmt.Fprintln(p.Writer, p.rule())
	if success {
		green := p.style().Foreground(colorGreenBright)
		fmt.Fprintln(p.Writer, green.Render("✅ ")+p.name()+green.Render(" - Linting completed!"))
	} else {
		yellow := p.style().Foreground(colorYellow)
		fmt.Fprintln(p.Writer, yellow.Render("⚠️  ")+p.name()+yellow.Render(" - Linting completed with issues"))
	}
	fmt.Fprintln(p.Writer, p.rule())
}

// RunSummary prints the mode, paths and ignore count box.
func (p *Printer) RunSummary(fix bool, paths []string, ignoreCount int) {
	mode := p.style().Foreground(colorBlue).Render("Check")
	if fix {
		mode = p.style().Foreground(colorGreen).Render("Fix")
	}
	kv := []KV{
		{Key: "Mode:", Value: mode},
		{Key: "Paths:", Value: p.style().Foreground(colorYellow).Render(strings.Join(paths, ", "))},
	}
	if ignoreCount > 0 {
		kv = append(kv, KV{
			Key:   "Ignoring:",
			Value: p.style().Foreground(colorYellow).Render(fmt.Sprintf("%d pattern(s)", ignoreCount)),
		})
	}

	sec := p.NewSection()
	for _, item := range kv {
		sec.Row("%s %s", p.style().Foreground(colorCyan).Render(item.Key), item.Value)
	}
	sec.Close()
}

// Notice prints an informational line.
func (p *Printer) Notice(format string, args ...any) {
	fmt.Fprintln(p.Writer, p.style().Foreground(colorCyan).Render(fmt.Sprintf(format, args...)))
}

// Version prints the version line.
func (p *Printer) Version(v string) {
	fmt.Fprintln(p.Writer, p.style().Foreground(colorCyan).Render(ProjectName+" v"+v))
}

// Fatal prints an unrecoverable error.
func (p *Printer) Fatal(err error) {
	fmt.Fprintf(p.Writer, "\n%s\n", p.style().Bold(true).Foreground(colorRed).Render("Fatal error: "+err.Error()))
}

// Heading renders bold text.
func (p *Printer) Heading(text string) string {
	return p.style().Bold(true).Render(text)
}

// KV is a labelled value in the run summary.
type KV struct {
	Key   string
	Value string
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsCI reports whether we run under a CI system that renders ANSI.
func IsCI() bool {
	return os.Getenv("CI") == "true"
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR, TERM=dumb, the caller's own opt-out and terminal
// detection.
func UseColor(disabled bool) bool {
	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}
