package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dim renders text in the dim chrome color.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// Bold renders text bold in the foreground color.
func Bold(s string) string {
	return StyleBold.Render(s)
}

// TruncID shortens a UUID for display, keeping the first 8 characters.
func TruncID(id string) string {
	if len(id) > 8 {
		return StyleDim.Render(id[:8])
	}
	return StyleDim.Render(id)
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}
