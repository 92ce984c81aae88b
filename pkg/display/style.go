package display

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// StyleEnabled reports whether w is a terminal that should receive styled text.
//
// Styling is off for pipes, buffers and when NO_COLOR is set.
func StyleEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// styles groups the lipgloss styles used for one writer.
type styles struct {
	heading lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#93C5FD"}),
		muted:   r.NewStyle().Faint(true),
	}
}

// heading renders a category heading, styled only when enabled.
func heading(w io.Writer, styled bool, name string, count int) string {
	suffix := fmt.Sprintf("(%d)", count)
	if !styled {
		return name + " " + suffix
	}
	s := newStyles(w)
	return s.heading.Render(name) + " " + s.muted.Render(suffix)
}
