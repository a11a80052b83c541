// Package tui provides the interactive progress view of a cook session.
package tui

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cook/internal/ui/output"
)

// NewModel creates a model drawing on w.
func NewModel(w io.Writer) Model {
	if w == nil {
		w = os.Stderr
	}
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Output:    out,
		MaxEvents: defaultMaxEvents,
		Now:       time.Now,
	}
}
