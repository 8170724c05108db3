// Package listing renders the two-column table of documented tasks.
package listing

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/ui/style"
)

// Renderer writes the task listing: one row per task that carries a
// description, in declaration order. It has no side effects beyond the
// writer and only fails on a write failure.
type Renderer struct{}

// New creates a new listing Renderer.
func New() *Renderer {
	return &Renderer{}
}

// colorProfile picks the color profile for the given writer, honoring
// NO_COLOR and falling back to plain text for non-terminal writers.
func colorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if f, ok := w.(*os.File); ok {
		return termenv.NewOutput(f).Profile
	}
	return termenv.Ascii
}

// Render writes the listing for the registry's documented tasks to w.
func (r *Renderer) Render(w io.Writer, reg *domain.Registry) error {
	tasks := reg.ListPublic()
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No documented tasks.")
		return err
	}

	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(colorProfile(w))
	nameStyle := lr.NewStyle().Foreground(style.Iris).Bold(true)
	descStyle := lr.NewStyle().Foreground(style.Slate)

	width := 0
	for _, t := range tasks {
		if l := len(t.Name.String()); l > width {
			width = l
		}
	}

	for _, t := range tasks {
		name := fmt.Sprintf("%-*s", width, t.Name.String())
		if _, err := fmt.Fprintf(w, "%s  %s\n", nameStyle.Render(name), descStyle.Render(t.Desc)); err != nil {
			return err
		}
	}
	return nil
}
