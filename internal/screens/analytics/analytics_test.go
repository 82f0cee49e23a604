package analytics

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/classpulse/classpulse/internal/agent"
	"github.com/classpulse/classpulse/internal/router"
)

func testReport() *agent.Analytics {
	return &agent.Analytics{
		SessionID: "sess-1",
		Metadata: agent.SessionMetadata{
			Subject:   "Mathematics",
			Topic:     "Linear Equations",
			ClassName: "10-A",
		},
		StudentStats: []agent.StudentStats{
			{StudentID: "s1", Name: "Student 1", CorrectAnswers: 4, TotalQuestions: 5, AverageResponseTime: 12000, Performance: agent.BandHigh},
			{StudentID: "s2", Name: "Student 2", CorrectAnswers: 1, TotalQuestions: 5, AverageResponseTime: 25000, Performance: agent.BandLow},
		},
		MasteryPercentage: 72,
		SubtopicOutcomes: []agent.SubtopicOutcome{
			{Subtopic: "Simple Linear Equations", Status: "passed", QuestionsAsked: 3, AverageScore: 80},
			{Subtopic: "Word Problems", Status: "failed", QuestionsAsked: 2, AverageScore: 35},
		},
		AIInsights: []string{"The class struggled with word problems."},
		Summary:    agent.AnalyticsSummary{TotalStudents: 2, TotalQuestions: 5, AverageScore: 50, PassRate: 50},
	}
}

func TestAnalytics_ViewShowsReport(t *testing.T) {
	s := New(testReport(), agent.StatusCompleted)
	view := s.View(100, 40)

	for _, want := range []string{
		"Session complete",
		"Mathematics",
		"Student 1",
		"Student 2",
		"Simple Linear Equations",
		"Word Problems",
		"struggled",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAnalytics_StoppedHeading(t *testing.T) {
	s := New(testReport(), agent.StatusStopped)
	view := s.View(100, 40)
	if !strings.Contains(view, "Session stopped") {
		t.Error("view missing stopped heading")
	}
}

func TestAnalytics_NilReport(t *testing.T) {
	s := New(nil, agent.StatusCompleted)
	view := s.View(80, 24)
	if !strings.Contains(view, "No report available") {
		t.Error("expected the empty-report message")
	}
}

func TestAnalytics_EnterPops(t *testing.T) {
	s := New(testReport(), agent.StatusCompleted)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
