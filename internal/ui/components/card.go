package components

import (
	"charm.land/lipgloss/v2"

	"github.com/classpulse/classpulse/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for panel border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Panel wraps content in a double-border frame, centering vertically and
// horizontally within the given dimensions.
func Panel(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// SectionCard wraps content in a rounded-border card at the given width.
func SectionCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// TitledCard renders a section card with a dim title line above the content.
func TitledCard(title, content string, cw int) string {
	header := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Bold(true).
		Render(title)
	return SectionCard(header+"\n"+content, cw)
}
