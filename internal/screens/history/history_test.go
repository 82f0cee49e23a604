package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/classpulse/classpulse/internal/store"
)

type mockEventRepo struct {
	records     []store.SessionRecord
	submissions map[string][]store.SubmissionRecord
	subQueries  int
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSubmission(_ context.Context, _ store.SubmissionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendAPIRequest(_ context.Context, _ store.APIRequestEventData) error {
	return nil
}
func (m *mockEventRepo) SessionHistory(_ context.Context, _ store.QueryOpts) ([]store.SessionRecord, error) {
	return m.records, nil
}
func (m *mockEventRepo) SubmissionsForSession(_ context.Context, sessionID string) ([]store.SubmissionRecord, error) {
	m.subQueries++
	return m.submissions[sessionID], nil
}

func testRecords() []store.SessionRecord {
	day := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	return []store.SessionRecord{
		{SessionID: "s2", Timestamp: day.Add(2 * time.Hour), Action: "complete", QuestionsAsked: 6, MasteryPercentage: 80},
		{SessionID: "s2", Timestamp: day.Add(time.Hour), Action: "start", Subject: "Mathematics", Topic: "Fractions", ClassName: "10-A"},
		{SessionID: "s1", Timestamp: day.Add(30 * time.Minute), Action: "stop", QuestionsAsked: 2, MasteryPercentage: 40, StopReason: "teacher_stopped"},
		{SessionID: "s1", Timestamp: day, Action: "start", Subject: "Mathematics", Topic: "Algebra", ClassName: "10-A"},
	}
}

func TestSummarize(t *testing.T) {
	rows := summarize(testRecords())

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].SessionID != "s2" || rows[1].SessionID != "s1" {
		t.Errorf("order = %q, %q, want newest session first", rows[0].SessionID, rows[1].SessionID)
	}
	if rows[0].Status != "completed" {
		t.Errorf("status = %q, want completed", rows[0].Status)
	}
	if rows[0].Topic != "Fractions" || rows[0].QuestionsAsked != 6 {
		t.Errorf("row = %+v, want setup fields merged from the start event", rows[0])
	}
	if rows[1].Status != "stopped (teacher_stopped)" {
		t.Errorf("status = %q", rows[1].Status)
	}
}

func TestHistory_LoadAndView(t *testing.T) {
	repo := &mockEventRepo{records: testRecords()}
	s := New(repo)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	_, _ = s.Update(cmd())

	view := s.View(120, 40)
	for _, want := range []string{"Fractions", "Algebra", "completed", "stopped"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistory_ExpandLoadsSubmissionsOnce(t *testing.T) {
	repo := &mockEventRepo{
		records: testRecords(),
		submissions: map[string][]store.SubmissionRecord{
			"s2": {{Subtopic: "Proper Fractions", Preset: "pass", ResponseCount: 10, CorrectCount: 8, Outcome: "pass"}},
		},
	}
	s := New(repo)
	_, _ = s.Update(historyLoadedMsg{Sessions: summarize(repo.records)})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a submissions load command")
	}
	_, _ = s.Update(cmd())

	view := s.View(120, 40)
	if !strings.Contains(view, "Proper Fractions") {
		t.Error("expanded details missing")
	}

	// Collapsing and re-expanding reuses the cached result.
	_, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no reload for cached submissions")
	}
	if repo.subQueries != 1 {
		t.Errorf("submission queries = %d, want 1", repo.subQueries)
	}
}

func TestHistory_EmptyJournal(t *testing.T) {
	s := New(&mockEventRepo{})
	_, _ = s.Update(historyLoadedMsg{})

	view := s.View(120, 40)
	if !strings.Contains(view, "No sessions yet") {
		t.Error("expected the empty message")
	}
}
