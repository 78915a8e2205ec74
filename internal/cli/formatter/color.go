package formatter

import (
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired chrome palette; process nodes keep their own swatches.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SwatchStyle renders text on a process's color swatch with dark foreground,
// matching the pastel palette of the canvas.
func SwatchStyle(color string) lipgloss.Style {
	if color == "" {
		color = domain.DefaultColor
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color("#3c3836"))
}

// TypeBadge returns the display marker for a process type.
func TypeBadge(t domain.ProcessType) string {
	if t == domain.ProcessSystem {
		return StyleBlue.Render("⚙")
	}
	return StyleGreen.Render("✎")
}
