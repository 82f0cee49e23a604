package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/classpulse/classpulse/internal/agent"
	"github.com/classpulse/classpulse/internal/router"
	"github.com/classpulse/classpulse/internal/screen"
	"github.com/classpulse/classpulse/internal/screens/home"
	"github.com/classpulse/classpulse/internal/simulate"
	"github.com/classpulse/classpulse/internal/store"
	"github.com/classpulse/classpulse/internal/ui/layout"
)

// Options carries the wired dependencies into the TUI.
type Options struct {
	Service      agent.Service
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
	Roster       []simulate.Student
}

// sessionInfoProvider is implemented by screens that run a live session and
// want their session label and status shown in the header.
type sessionInfoProvider interface {
	SessionInfo() (label, status string)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Service, opts.EventRepo, opts.SnapshotRepo, opts.Roster)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is left to the screens: a live session must be able to turn
		// it into a stop confirmation instead of silently popping.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	sessionLabel := ""
	status := ""
	if active != nil {
		title = active.Title()
		if p, ok := active.(sessionInfoProvider); ok {
			sessionLabel, status = p.SessionInfo()
		}
	}

	header := layout.RenderHeader(title, sessionLabel, status, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
