package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Section collects rows and renders them inside a box-drawing frame.
// Nothing is written until Close.
type Section struct {
	p    *Printer
	rows []string
}

// NewSection starts an empty framed section.
func (p *Printer) NewSection() *Section {
	return &Section{p: p}
}

// Row adds a content line to the section.
func (s *Section) Row(format string, args ...any) {
	s.rows = append(s.rows, fmt.Sprintf(format, args...))
}

// Close writes the framed section. lipgloss pads every row to the widest
// one, measuring printable width rather than bytes.
func (s *Section) Close() {
	if len(s.rows) == 0 {
		return
	}
	box := s.p.style().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorCyan).
		Padding(0, 2)
	fmt.Fprintln(s.p.Writer, box.Render(strings.Join(s.rows, "\n")))
}
