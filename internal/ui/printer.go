package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Tag is the bracketed status prefix of a progress line.
type Tag string

// Status tags, fixed width so messages line up.
const (
	TagOK   Tag = "[ OK ]"
	TagSkip Tag = "[SKIP]"
	TagMiss Tag = "[MISS]"
	TagWarn Tag = "[WARN]"
	TagFail Tag = "[FAIL]"
	TagInfo Tag = "[INFO]"
)

var tagStyles = map[Tag]lipgloss.Style{
	TagOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true),
	TagSkip: lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	TagMiss: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true),
	TagWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	TagFail: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
	TagInfo: lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")),
}

// Printer writes status lines to an io.Writer.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer writing to w. A nil w discards output.
func New(w io.Writer, color bool) *Printer {
	if w == nil {
		w = io.Discard
	}
	return &Printer{w: w, color: color}
}

// Discard returns a Printer that drops everything.
func Discard() *Printer { return New(io.Discard, false) }

// ForWriter enables colour only when w is a terminal and NO_COLOR is unset.
func ForWriter(w io.Writer) *Printer {
	return New(w, IsTerminal(w) && os.Getenv("NO_COLOR") == "")
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Status prints an indented, tagged line.
func (p *Printer) Status(tag Tag, format string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", p.render(tag), fmt.Sprintf(format, args...))
}

// Line prints an untagged line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) render(tag Tag) string {
	if !p.color {
		return string(tag)
	}
	style, ok := tagStyles[tag]
	if !ok {
		return string(tag)
	}
	return style.Render(string(tag))
}
