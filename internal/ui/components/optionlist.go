package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/classpulse/classpulse/internal/ui/theme"
)

// OptionList renders a question's answer options read-only, the way the
// class sees them on their own devices.
type OptionList struct {
	Options []string
}

// NewOptionList creates an option list.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// View renders the lettered option rows.
func (o OptionList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}
		line := fmt.Sprintf("  %s)  %s", label, opt)
		s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
	}
	return s
}
