package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/classpulse/classpulse/internal/router"
	"github.com/classpulse/classpulse/internal/screen"
	"github.com/classpulse/classpulse/internal/store"
	"github.com/classpulse/classpulse/internal/ui/layout"
	"github.com/classpulse/classpulse/internal/ui/theme"
)

// sessionSummary merges the journal events of one session into a single row.
type sessionSummary struct {
	SessionID         string
	Date              string
	Subject           string
	Topic             string
	ClassName         string
	Status            string
	QuestionsAsked    int
	InterventionCount int
	MasteryPercentage float64
}

type historyLoadedMsg struct {
	Sessions []sessionSummary
	Err      error
}

type submissionsLoadedMsg struct {
	SessionID   string
	Submissions []store.SubmissionRecord
	Err         error
}

// HistoryScreen lists past sessions from the local journal.
type HistoryScreen struct {
	eventRepo   store.EventRepo
	sessions    []sessionSummary
	submissions map[string][]store.SubmissionRecord
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo:   eventRepo,
		submissions: make(map[string][]store.SubmissionRecord),
		expanded:    make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		records, err := repo.SessionHistory(context.Background(), store.QueryOpts{Limit: 200})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: summarize(records)}
	}
}

// summarize folds lifecycle events into one row per session, newest first.
// Records arrive newest first, so the first record seen for a session is its
// terminal event and the start event fills in the setup fields.
func summarize(records []store.SessionRecord) []sessionSummary {
	index := make(map[string]int)
	var out []sessionSummary

	for _, r := range records {
		i, seen := index[r.SessionID]
		if !seen {
			i = len(out)
			index[r.SessionID] = i
			out = append(out, sessionSummary{
				SessionID: r.SessionID,
				Date:      r.Timestamp.Format("Jan 02, 2006"),
				Status:    statusLabel(r),
			})
		}

		row := &out[i]
		if r.Subject != "" {
			row.Subject = r.Subject
		}
		if r.Topic != "" {
			row.Topic = r.Topic
		}
		if r.ClassName != "" {
			row.ClassName = r.ClassName
		}
		if r.QuestionsAsked > row.QuestionsAsked {
			row.QuestionsAsked = r.QuestionsAsked
		}
		if r.InterventionCount > row.InterventionCount {
			row.InterventionCount = r.InterventionCount
		}
		if r.MasteryPercentage > row.MasteryPercentage {
			row.MasteryPercentage = r.MasteryPercentage
		}
	}
	return out
}

func statusLabel(r store.SessionRecord) string {
	switch r.Action {
	case "complete":
		return "completed"
	case "stop":
		if r.StopReason != "" {
			return "stopped (" + r.StopReason + ")"
		}
		return "stopped"
	default:
		return "in progress"
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case submissionsLoadedMsg:
		if msg.Err == nil {
			s.submissions[msg.SessionID] = msg.Submissions
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s, s.toggleDetails()
		}
	}
	return s, nil
}

// toggleDetails expands the selected row, loading its submissions on first
// expand.
func (s *HistoryScreen) toggleDetails() tea.Cmd {
	if s.selected >= len(s.sessions) {
		return nil
	}
	s.expanded[s.selected] = !s.expanded[s.selected]

	sessionID := s.sessions[s.selected].SessionID
	if !s.expanded[s.selected] {
		return nil
	}
	if _, ok := s.submissions[sessionID]; ok {
		return nil
	}

	repo := s.eventRepo
	return func() tea.Msg {
		subs, err := repo.SubmissionsForSession(context.Background(), sessionID)
		return submissionsLoadedMsg{SessionID: sessionID, Submissions: subs, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start one from the home screen.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		subject := sess.Subject
		if sess.Topic != "" {
			subject += " · " + sess.Topic
		}

		line := fmt.Sprintf("%s%s  %-40s  %d questions  %.0f%% mastery  %s",
			prefix, sess.Date, subject, sess.QuestionsAsked, sess.MasteryPercentage, sess.Status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			s.renderDetails(&b, width, sess.SessionID)
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderDetails(b *strings.Builder, width int, sessionID string) {
	subs, ok := s.submissions[sessionID]
	if !ok {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    Loading...")))
		b.WriteString("\n")
		return
	}
	if len(subs) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    No submissions this session")))
		b.WriteString("\n")
		return
	}

	for _, sub := range subs {
		marker := theme.Hint.Render("·")
		switch sub.Outcome {
		case "pass":
			marker = theme.Good.Render("✓")
		case "fail":
			marker = theme.Bad.Render("✗")
		}
		detail := fmt.Sprintf("    %s %s  %s  %d/%d correct  consistency %.0f%%",
			marker, sub.Subtopic, sub.Preset, sub.CorrectCount, sub.ResponseCount,
			sub.QuestionConsistency)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
		b.WriteString("\n")
	}
}
