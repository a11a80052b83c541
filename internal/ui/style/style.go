// Package style holds the cook palette and the glyphs shared by the logger,
// the session report and the progress renderers.
package style

import "github.com/charmbracelet/lipgloss"

// Ember is the brand colour; the others map to cook outcomes.
var (
	Ember  = lipgloss.Color("#F97316")
	Ash    = lipgloss.Color("#667085")
	Cream  = lipgloss.Color("#FFF7ED")
	Done   = lipgloss.Color("#22A06B")
	Burnt  = lipgloss.Color("#D93025")
	Simmer = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Progress = "●"
	Failed   = "✗"
	Warn     = "!"
	Pause    = "~"
	Next     = "→"

	// BarCooked and BarPending fill the progress bar.
	BarCooked  = "█"
	BarPending = "░"
)
