package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/classpulse/classpulse/internal/ui/theme"
)

// MenuItem is one entry in the home screen's action list. Selecting it runs
// Action; disabled entries are skipped when the selection moves.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical action list driven by the arrow keys.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the selection on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// Update moves the selection and runs the selected action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the list with a marker on the selected entry.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		if i == m.Selected {
			b.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		} else {
			b.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
