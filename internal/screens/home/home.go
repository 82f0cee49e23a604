package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/classpulse/classpulse/internal/agent"
	"github.com/classpulse/classpulse/internal/router"
	"github.com/classpulse/classpulse/internal/screen"
	"github.com/classpulse/classpulse/internal/screens/history"
	"github.com/classpulse/classpulse/internal/screens/setup"
	"github.com/classpulse/classpulse/internal/simulate"
	"github.com/classpulse/classpulse/internal/store"
	"github.com/classpulse/classpulse/internal/ui/components"
	"github.com/classpulse/classpulse/internal/ui/theme"
)

// HomeScreen is the entry menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc agent.Service, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, roster []simulate.Student) *HomeScreen {
	items := []components.MenuItem{
		{Label: "NEW SESSION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(svc, eventRepo, snapRepo, roster),
				}
			}
		}},
		{Label: "SESSION HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := theme.Title.Width(cw).Render("ClassPulse")
	subtitle := theme.Subtitle.Width(cw).Render("Adaptive quiz sessions for your classroom")

	menu := lipgloss.PlaceHorizontal(cw, lipgloss.Center, h.menu.View())

	content := strings.Join([]string{title, subtitle, "", menu}, "\n")
	return components.Panel(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
