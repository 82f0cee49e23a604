package setup

import (
	"context"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/classpulse/classpulse/internal/agent"
	"github.com/classpulse/classpulse/internal/router"
	"github.com/classpulse/classpulse/internal/screen"
	"github.com/classpulse/classpulse/internal/screens/dashboard"
	"github.com/classpulse/classpulse/internal/simulate"
	"github.com/classpulse/classpulse/internal/store"
	"github.com/classpulse/classpulse/internal/ui/components"
	"github.com/classpulse/classpulse/internal/ui/layout"
	"github.com/classpulse/classpulse/internal/ui/theme"
)

// Field indexes into the form.
const (
	fieldSchoolID = iota
	fieldTeacherID
	fieldBoard
	fieldClassLevel
	fieldClassName
	fieldSubject
	fieldChapter
	fieldTopic
	fieldSubtopics
	fieldCount
)

// Demo identifiers used until the school registers real ones.
const (
	demoSchoolID  = "507f1f77bcf86cd799439011"
	demoTeacherID = "507f1f77bcf86cd799439012"
)

type suggestReadyMsg struct {
	Suggestion *agent.SubtopicSuggestion
	Err        error
}

type sessionStartedMsg struct {
	Session *agent.Session
	Input   agent.StartSessionInput
	Err     error
}

// SetupScreen collects the session parameters and starts the session.
type SetupScreen struct {
	svc       agent.Service
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	roster    []simulate.Student

	fields     [fieldCount]components.TextInput
	focused    int
	suggesting bool
	starting   bool
	errMsg     string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup form, pre-filled from the last saved setup when one
// exists.
func New(svc agent.Service, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, roster []simulate.Student) *SetupScreen {
	s := &SetupScreen{
		svc:       svc,
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		roster:    roster,
	}

	s.fields[fieldSchoolID] = components.NewTextInput("School ID", demoSchoolID, false, 40)
	s.fields[fieldTeacherID] = components.NewTextInput("Teacher ID", demoTeacherID, false, 40)
	s.fields[fieldBoard] = components.NewTextInput("Board", "CBSE", false, 20)
	s.fields[fieldClassLevel] = components.NewTextInput("Class level", "10", true, 2)
	s.fields[fieldClassName] = components.NewTextInput("Class name", "10-A", false, 20)
	s.fields[fieldSubject] = components.NewTextInput("Subject", "Mathematics", false, 40)
	s.fields[fieldChapter] = components.NewTextInput("Chapter", "Algebra", false, 60)
	s.fields[fieldTopic] = components.NewTextInput("Topic", "Linear Equations", false, 60)
	s.fields[fieldSubtopics] = components.NewTextInput("Subtopics (comma-separated)", "Simple Linear Equations, Word Problems", false, 200)

	s.applyDefaults(loadDefaults(snapRepo))
	s.fields[s.focused].Focus()
	return s
}

// loadDefaults reads the last saved setup, falling back to the demo values.
func loadDefaults(snapRepo store.SnapshotRepo) store.SetupDefaults {
	defaults := store.SetupDefaults{
		SchoolID:   demoSchoolID,
		TeacherID:  demoTeacherID,
		Board:      "CBSE",
		ClassLevel: 10,
		ClassName:  "10-A",
		Subject:    "Mathematics",
		Chapter:    "Algebra",
		Topic:      "Linear Equations",
		Subtopics: []string{
			"Simple Linear Equations",
			"Equations with Variables on Both Sides",
			"Word Problems",
		},
		ProficiencyThreshold: 60,
		MinimumQuestions:     1,
	}
	if snapRepo == nil {
		return defaults
	}
	snap, err := snapRepo.Latest(context.Background())
	if err != nil || snap == nil || snap.Data.LastSetup == nil {
		return defaults
	}
	saved := *snap.Data.LastSetup
	if saved.SchoolID == "" {
		saved.SchoolID = defaults.SchoolID
	}
	if saved.TeacherID == "" {
		saved.TeacherID = defaults.TeacherID
	}
	if saved.ProficiencyThreshold == 0 {
		saved.ProficiencyThreshold = defaults.ProficiencyThreshold
	}
	if saved.MinimumQuestions == 0 {
		saved.MinimumQuestions = defaults.MinimumQuestions
	}
	return saved
}

func (s *SetupScreen) applyDefaults(d store.SetupDefaults) {
	s.fields[fieldSchoolID].SetValue(d.SchoolID)
	s.fields[fieldTeacherID].SetValue(d.TeacherID)
	s.fields[fieldBoard].SetValue(d.Board)
	if d.ClassLevel > 0 {
		s.fields[fieldClassLevel].SetValue(strconv.Itoa(d.ClassLevel))
	}
	s.fields[fieldClassName].SetValue(d.ClassName)
	s.fields[fieldSubject].SetValue(d.Subject)
	s.fields[fieldChapter].SetValue(d.Chapter)
	s.fields[fieldTopic].SetValue(d.Topic)
	s.fields[fieldSubtopics].SetValue(strings.Join(d.Subtopics, ", "))
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.fields[s.focused].Init()
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+G", Description: "Suggest subtopics"},
		{Key: "Ctrl+S", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestReadyMsg:
		s.suggesting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		if msg.Suggestion != nil && len(msg.Suggestion.Subtopics) > 0 {
			s.fields[fieldSubtopics].SetValue(strings.Join(msg.Suggestion.Subtopics, ", "))
			if msg.Suggestion.MainTopic != "" {
				s.fields[fieldTopic].SetValue(msg.Suggestion.MainTopic)
			}
		}
		return s, nil

	case sessionStartedMsg:
		s.starting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.persistStart(msg)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: dashboard.New(s.svc, s.eventRepo, s.roster, msg.Session, msg.Input),
			}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.fields[s.focused], cmd = s.fields[s.focused].Update(msg)
	return s, cmd
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.starting || s.suggesting {
		return s, nil
	}

	switch msg.String() {
	case "tab", "down":
		return s, s.focusField((s.focused + 1) % fieldCount)
	case "shift+tab", "up":
		return s, s.focusField((s.focused + fieldCount - 1) % fieldCount)
	case "ctrl+g":
		return s.suggestSubtopics()
	case "ctrl+s":
		return s.startSession()
	case "enter":
		if s.focused == fieldCount-1 {
			return s.startSession()
		}
		return s, s.focusField(s.focused + 1)
	}

	var cmd tea.Cmd
	s.fields[s.focused], cmd = s.fields[s.focused].Update(msg)
	return s, cmd
}

func (s *SetupScreen) focusField(i int) tea.Cmd {
	s.fields[s.focused].Blur()
	s.focused = i
	return s.fields[s.focused].Focus()
}

// suggestSubtopics asks the aux endpoint to propose subtopics for the topic.
func (s *SetupScreen) suggestSubtopics() (screen.Screen, tea.Cmd) {
	input := agent.SuggestSubtopicsInput{
		Board:      s.fields[fieldBoard].Value(),
		ClassLevel: numeric(s.fields[fieldClassLevel]),
		Subject:    s.fields[fieldSubject].Value(),
		Chapter:    s.fields[fieldChapter].Value(),
		Topic:      s.fields[fieldTopic].Value(),
	}
	if input.Topic == "" {
		s.errMsg = "enter a topic before requesting suggestions"
		return s, nil
	}

	s.suggesting = true
	s.errMsg = ""
	svc := s.svc
	return s, func() tea.Msg {
		suggestion, err := svc.SuggestSubtopics(context.Background(), input)
		return suggestReadyMsg{Suggestion: suggestion, Err: err}
	}
}

func (s *SetupScreen) startSession() (screen.Screen, tea.Cmd) {
	input, ok := s.buildInput()
	if !ok {
		return s, nil
	}

	s.starting = true
	s.errMsg = ""
	svc := s.svc
	return s, func() tea.Msg {
		session, err := svc.StartSession(context.Background(), input)
		return sessionStartedMsg{Session: session, Input: input, Err: err}
	}
}

// buildInput validates the form and assembles the start payload.
func (s *SetupScreen) buildInput() (agent.StartSessionInput, bool) {
	var input agent.StartSessionInput
	ok := true

	input.SchoolID = strings.TrimSpace(s.fields[fieldSchoolID].Value())
	if input.SchoolID == "" {
		s.fields[fieldSchoolID].SetError("school id is required")
		ok = false
	} else {
		s.fields[fieldSchoolID].SetError("")
	}

	input.TeacherID = strings.TrimSpace(s.fields[fieldTeacherID].Value())
	if input.TeacherID == "" {
		s.fields[fieldTeacherID].SetError("teacher id is required")
		ok = false
	} else {
		s.fields[fieldTeacherID].SetError("")
	}

	input.Subject = strings.TrimSpace(s.fields[fieldSubject].Value())
	if input.Subject == "" {
		s.fields[fieldSubject].SetError("subject is required")
		ok = false
	} else {
		s.fields[fieldSubject].SetError("")
	}

	input.Topic = strings.TrimSpace(s.fields[fieldTopic].Value())
	if input.Topic == "" {
		s.fields[fieldTopic].SetError("topic is required")
		ok = false
	} else {
		s.fields[fieldTopic].SetError("")
	}

	for _, part := range strings.Split(s.fields[fieldSubtopics].Value(), ",") {
		if sub := strings.TrimSpace(part); sub != "" {
			input.Subtopics = append(input.Subtopics, sub)
		}
	}
	if len(input.Subtopics) == 0 {
		s.fields[fieldSubtopics].SetError("at least one subtopic is required")
		ok = false
	} else {
		s.fields[fieldSubtopics].SetError("")
	}

	input.Chapter = strings.TrimSpace(s.fields[fieldChapter].Value())
	input.ClassName = strings.TrimSpace(s.fields[fieldClassName].Value())
	input.ClassLevel = numeric(s.fields[fieldClassLevel])
	input.ProficiencyThreshold = 60
	input.MinimumQuestions = 1

	return input, ok
}

func numeric(t components.TextInput) int {
	n, err := t.NumericValue()
	if err != nil {
		return 0
	}
	return n
}

// persistStart saves the setup for next time and journals the start event.
func (s *SetupScreen) persistStart(msg sessionStartedMsg) {
	ctx := context.Background()

	if s.snapRepo != nil {
		_ = s.snapRepo.Save(ctx, &store.Snapshot{
			Data: store.SnapshotData{
				Version: 1,
				LastSetup: &store.SetupDefaults{
					SchoolID:             msg.Input.SchoolID,
					TeacherID:            msg.Input.TeacherID,
					Board:                s.fields[fieldBoard].Value(),
					ClassLevel:           msg.Input.ClassLevel,
					ClassName:            msg.Input.ClassName,
					Subject:              msg.Input.Subject,
					Chapter:              msg.Input.Chapter,
					Topic:                msg.Input.Topic,
					Subtopics:            msg.Input.Subtopics,
					ProficiencyThreshold: msg.Input.ProficiencyThreshold,
					MinimumQuestions:     msg.Input.MinimumQuestions,
				},
			},
		})
	}

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:  msg.Session.SessionID,
			Action:     "start",
			Subject:    msg.Input.Subject,
			Chapter:    msg.Input.Chapter,
			Topic:      msg.Input.Topic,
			ClassName:  msg.Input.ClassName,
			ClassLevel: msg.Input.ClassLevel,
			Subtopics:  msg.Input.Subtopics,
		})
	}
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var rows []string
	for i := range s.fields {
		rows = append(rows, s.fields[i].View())
	}

	status := ""
	switch {
	case s.starting:
		status = theme.Hint.Render("Starting session...")
	case s.suggesting:
		status = theme.Hint.Render("Asking for subtopic suggestions...")
	case s.errMsg != "":
		status = lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)
	}

	form := strings.Join(rows, "\n\n")
	start := components.NewButton("Start session (Ctrl+S)", !s.starting && !s.suggesting, nil)
	form += "\n\n" + start.View()
	if status != "" {
		form += "\n\n" + status
	}

	card := components.TitledCard("Session setup", form, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
