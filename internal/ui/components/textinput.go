package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/classpulse/classpulse/internal/ui/theme"
)

// TextInput wraps bubbles/textinput as a labeled form field.
type TextInput struct {
	Label       string
	Model       textinput.Model
	NumericOnly bool
	errMsg      string
}

// NewTextInput creates a new styled text input.
func NewTextInput(label, placeholder string, numericOnly bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Label:       label,
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 {
				if key[0] < '0' || key[0] > '9' {
					return t, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the field with its label, and the validation error if set.
func (t TextInput) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Label)
	view := label + "\n" + t.Model.View()
	if t.errMsg != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("  "+t.errMsg)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue overwrites the current input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// NumericValue returns the input value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Focus gives the field keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// SetError attaches a validation message shown under the field.
func (t *TextInput) SetError(msg string) {
	t.errMsg = msg
}
