package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/classpulse/classpulse/internal/ui/theme"
)

// Button is a highlighted action label. Forms render it to show which action
// enter triggers; Active dims it while the action is unavailable.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a button. OnPress may be nil when the hosting screen
// handles the key itself.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Update runs OnPress when enter is pressed on an active button.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

func (b Button) View() string {
	label := "  ▸ " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
