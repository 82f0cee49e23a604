package setup

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/classpulse/classpulse/internal/agent"
	"github.com/classpulse/classpulse/internal/router"
	"github.com/classpulse/classpulse/internal/store"
)

type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

type mockEventRepo struct {
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSubmission(_ context.Context, _ store.SubmissionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendAPIRequest(_ context.Context, _ store.APIRequestEventData) error {
	return nil
}
func (m *mockEventRepo) SessionHistory(_ context.Context, _ store.QueryOpts) ([]store.SessionRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) SubmissionsForSession(_ context.Context, _ string) ([]store.SubmissionRecord, error) {
	return nil, nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSetup_DemoDefaultsWithoutSnapshot(t *testing.T) {
	s := New(agent.NewMockService(), &mockEventRepo{}, &mockSnapshotRepo{}, nil)

	if got := s.fields[fieldSubject].Value(); got != "Mathematics" {
		t.Errorf("subject = %q, want demo default", got)
	}
	if got := s.fields[fieldTopic].Value(); got != "Linear Equations" {
		t.Errorf("topic = %q, want demo default", got)
	}
	if got := s.fields[fieldClassLevel].Value(); got != "10" {
		t.Errorf("class level = %q, want 10", got)
	}
}

func TestSetup_PrefillsFromSavedSnapshot(t *testing.T) {
	snapRepo := &mockSnapshotRepo{}
	_ = snapRepo.Save(context.Background(), &store.Snapshot{
		Data: store.SnapshotData{
			Version: 1,
			LastSetup: &store.SetupDefaults{
				Board:      "ICSE",
				ClassLevel: 9,
				ClassName:  "9-B",
				Subject:    "Physics",
				Chapter:    "Motion",
				Topic:      "Velocity",
				Subtopics:  []string{"Average Velocity"},
			},
		},
	})

	s := New(agent.NewMockService(), &mockEventRepo{}, snapRepo, nil)

	if got := s.fields[fieldSubject].Value(); got != "Physics" {
		t.Errorf("subject = %q, want saved value", got)
	}
	if got := s.fields[fieldBoard].Value(); got != "ICSE" {
		t.Errorf("board = %q, want saved value", got)
	}
	if got := s.fields[fieldSubtopics].Value(); got != "Average Velocity" {
		t.Errorf("subtopics = %q", got)
	}
	// Saves made before the id fields existed fall back to the demo ids.
	if got := s.fields[fieldSchoolID].Value(); got != demoSchoolID {
		t.Errorf("school id = %q, want the demo fallback", got)
	}
}

func TestSetup_ValidationBlocksStart(t *testing.T) {
	svc := agent.NewMockService()
	s := New(svc, &mockEventRepo{}, &mockSnapshotRepo{}, nil)
	s.fields[fieldSubject].SetValue("")
	s.fields[fieldTopic].SetValue("")
	s.fields[fieldSubtopics].SetValue("")

	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd != nil {
		t.Error("start should be blocked by validation")
	}
	if len(svc.Calls) != 0 {
		t.Errorf("unexpected calls: %v", svc.Calls)
	}
	if s.starting {
		t.Error("starting flag should stay clear")
	}
}

func TestSetup_StartReplacesWithDashboard(t *testing.T) {
	svc := agent.NewMockService(
		agent.MockResult{Session: &agent.Session{
			SessionID:       "sess-42",
			Status:          agent.StatusInitialized,
			CurrentSubtopic: "Simple Linear Equations",
		}},
	)
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	s := New(svc, eventRepo, snapRepo, nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a start command")
	}
	if !s.starting {
		t.Error("starting flag should be set")
	}

	msg := cmd() // runs StartSession against the mock
	scr, cmd := s.Update(msg)
	if cmd == nil {
		t.Fatal("expected a replace-screen command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the dashboard")
	}
	if scr.(*SetupScreen).starting {
		t.Error("starting flag should clear once the session started")
	}

	// The setup is saved for next launch and the start is journaled.
	if len(snapRepo.snapshots) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(snapRepo.snapshots))
	}
	saved := snapRepo.snapshots[0].Data.LastSetup
	if saved == nil || saved.Subject != "Mathematics" {
		t.Errorf("saved setup = %+v", saved)
	}
	if len(eventRepo.sessionEvents) != 1 || eventRepo.sessionEvents[0].Action != "start" {
		t.Fatalf("journaled events = %+v", eventRepo.sessionEvents)
	}
	if eventRepo.sessionEvents[0].SessionID != "sess-42" {
		t.Errorf("journaled session id = %q", eventRepo.sessionEvents[0].SessionID)
	}
}

func TestSetup_StartErrorShowsMessage(t *testing.T) {
	svc := agent.NewMockService(
		agent.MockResult{Err: &agent.RemoteError{Operation: "start", Message: "service unavailable"}},
	)
	s := New(svc, &mockEventRepo{}, &mockSnapshotRepo{}, nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a start command")
	}
	_, _ = s.Update(cmd())

	if s.errMsg == "" {
		t.Error("expected an error message")
	}
	if s.starting {
		t.Error("starting flag should clear on failure")
	}
}

func TestSetup_SuggestFillsSubtopics(t *testing.T) {
	svc := agent.NewMockService(
		agent.MockResult{Suggestion: &agent.SubtopicSuggestion{
			MainTopic: "Linear Equations",
			Subtopics: []string{"One Variable", "Two Variables", "Word Problems"},
		}},
	)
	s := New(svc, &mockEventRepo{}, &mockSnapshotRepo{}, nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a suggest command")
	}
	_, _ = s.Update(cmd())

	want := "One Variable, Two Variables, Word Problems"
	if got := s.fields[fieldSubtopics].Value(); got != want {
		t.Errorf("subtopics = %q, want %q", got, want)
	}
}

func TestSetup_SuggestRequiresTopic(t *testing.T) {
	svc := agent.NewMockService()
	s := New(svc, &mockEventRepo{}, &mockSnapshotRepo{}, nil)
	s.fields[fieldTopic].SetValue("")

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})
	if cmd != nil {
		t.Error("suggest should be blocked without a topic")
	}
	if s.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestSetup_TabMovesFocus(t *testing.T) {
	s := New(agent.NewMockService(), &mockEventRepo{}, &mockSnapshotRepo{}, nil)

	if s.focused != fieldSchoolID {
		t.Fatalf("initial focus = %d", s.focused)
	}
	_, _ = s.Update(specialKey(tea.KeyTab))
	if s.focused != fieldTeacherID {
		t.Errorf("focus after tab = %d, want %d", s.focused, fieldTeacherID)
	}
	_, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.focused != fieldSchoolID {
		t.Errorf("focus after shift+tab = %d, want %d", s.focused, fieldSchoolID)
	}
}

func TestSetup_StartPayloadCarriesSchoolAndTeacher(t *testing.T) {
	s := New(agent.NewMockService(), &mockEventRepo{}, &mockSnapshotRepo{}, nil)

	input, ok := s.buildInput()
	if !ok {
		t.Fatal("default form should validate")
	}
	if input.SchoolID != demoSchoolID {
		t.Errorf("schoolId = %q, want the demo id", input.SchoolID)
	}
	if input.TeacherID != demoTeacherID {
		t.Errorf("teacherId = %q, want the demo id", input.TeacherID)
	}

	s.fields[fieldSchoolID].SetValue("")
	if _, ok := s.buildInput(); ok {
		t.Error("an empty school id should block the start")
	}
}
