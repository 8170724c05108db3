// Package style provides shared UI styling primitives for consistent visual
// presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris  = lipgloss.Color("#8B5CF6")
	Slate = lipgloss.Color("#667085")
	Red   = lipgloss.Color("#D93025")
)
