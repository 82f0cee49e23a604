package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/classpulse/classpulse/internal/ui/theme"
)

// ProgressBar renders a labeled percentage bar. The dashboard uses it for
// class mastery, which the server reports on a 0-100 scale; Percent here is
// the 0-1 fraction.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a bar spanning width cells, label and percent
// readout included.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		result += theme.Hint.Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}
