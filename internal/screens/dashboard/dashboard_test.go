package dashboard

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/classpulse/classpulse/internal/agent"
	"github.com/classpulse/classpulse/internal/router"
	"github.com/classpulse/classpulse/internal/screen"
	"github.com/classpulse/classpulse/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	submissions   []store.SubmissionEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSubmission(_ context.Context, data store.SubmissionEventData) error {
	m.submissions = append(m.submissions, data)
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

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestion() *agent.Question {
	return &agent.Question{
		QuestionID:      "q-1",
		Prompt:          "Solve 2x + 3 = 7",
		Options:         []string{"x = 2", "x = 3", "x = 4", "x = 5"},
		Difficulty:      agent.DifficultyEasy,
		RuntimeMs:       60000,
		CurrentSubtopic: "Simple Linear Equations",
		QuestionIndex:   0,
	}
}

func testDashboard(svc agent.Service) (*DashboardScreen, *mockEventRepo) {
	repo := &mockEventRepo{}
	session := &agent.Session{
		SessionID:       "sess-1",
		Status:          agent.StatusInitialized,
		CurrentSubtopic: "Simple Linear Equations",
	}
	input := agent.StartSessionInput{
		Subject:   "Mathematics",
		Topic:     "Linear Equations",
		ClassName: "10-A",
		Subtopics: []string{"Simple Linear Equations"},
	}
	return New(svc, repo, nil, session, input), repo
}

// loadQuestion puts the screen into the running state with a question shown.
func loadQuestion(t *testing.T, d *DashboardScreen) {
	t.Helper()
	scr, _ := d.Update(questionMsg{SessionID: "sess-1", Question: testQuestion()})
	if scr.(*DashboardScreen).state.CurrentQuestion == nil {
		t.Fatal("question not loaded")
	}
}

// step executes a command and feeds its message back into the screen.
func step(t *testing.T, s screen.Screen, cmd tea.Cmd) (screen.Screen, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return s.Update(cmd())
}

func TestDashboard_QuestionLoads(t *testing.T) {
	d, _ := testDashboard(agent.NewMockService())
	loadQuestion(t, d)

	if d.state.Status != agent.StatusRunning {
		t.Errorf("status = %q, want running", d.state.Status)
	}
	if d.remainingMs != 60000 {
		t.Errorf("remainingMs = %d, want 60000", d.remainingMs)
	}
	if d.state.Loading {
		t.Error("loading should be cleared after a question arrives")
	}
}

func TestDashboard_StaleMessagesDropped(t *testing.T) {
	d, _ := testDashboard(agent.NewMockService())
	loadQuestion(t, d)

	other := testQuestion()
	other.QuestionID = "q-other"
	d.Update(questionMsg{SessionID: "sess-OLD", Question: other})

	if d.state.CurrentQuestion.QuestionID != "q-1" {
		t.Errorf("stale question applied: %q", d.state.CurrentQuestion.QuestionID)
	}

	d.Update(analyticsMsg{SessionID: "sess-OLD", Analytics: &agent.Analytics{}})
	if d.state.Analytics != nil {
		t.Error("stale analytics applied")
	}
}

func TestDashboard_WeakBatchTriggersOneExplanationFetch(t *testing.T) {
	svc := agent.NewMockService(
		agent.MockResult{Submit: &agent.SubmitResult{
			Status:              agent.StatusEvaluating,
			QuestionConsistency: 30,
			MasteryPercentage:   25,
			Outcome:             "fail",
			NextAction:          agent.ActionShowExplanation,
		}},
		agent.MockResult{Explain: &agent.Explanation{
			Explanation:   "Subtract 3 from both sides, then divide by 2.",
			CorrectAnswer: "x = 2",
		}},
	)
	d, repo := testDashboard(svc)
	loadQuestion(t, d)

	scr, cmd := d.Update(keyPress('f'))
	scr, cmd = step(t, scr, cmd) // submitResultMsg
	dd := scr.(*DashboardScreen)

	if !dd.flow.Busy() {
		t.Error("flow should be busy while the explanation fetch is in flight")
	}
	if dd.state.NextAction != "" {
		t.Error("signal should be consumed before the effect runs")
	}
	if !dd.state.Loading {
		t.Error("loading should be set for the explanation fetch")
	}

	scr, _ = step(t, scr, cmd) // explanationMsg
	dd = scr.(*DashboardScreen)

	if dd.state.Explanation == nil {
		t.Fatal("explanation not shown")
	}
	if dd.flow.Busy() {
		t.Error("flow should be idle after the explanation arrived")
	}
	if calls := svc.CallsFor("explanation"); len(calls) != 1 {
		t.Errorf("explanation calls = %d, want 1", len(calls))
	}

	if len(repo.submissions) != 1 {
		t.Fatalf("journaled submissions = %d, want 1", len(repo.submissions))
	}
	sub := repo.submissions[0]
	if sub.Preset != "fail" || sub.QuestionID != "q-1" || sub.Outcome != "fail" {
		t.Errorf("journaled submission = %+v", sub)
	}
	if sub.ResponseCount != 10 || sub.CorrectCount != 4 {
		t.Errorf("counts = %d/%d, want 4/10", sub.CorrectCount, sub.ResponseCount)
	}
}

func TestDashboard_ExplanationDismissFetchesNextQuestion(t *testing.T) {
	svc := agent.NewMockService(
		agent.MockResult{Question: testQuestion()},
	)
	d, _ := testDashboard(svc)
	loadQuestion(t, d)
	d.state.SetExplanation(&agent.Explanation{Explanation: "..."})

	scr, cmd := d.Update(specialKey(tea.KeyEnter))
	dd := scr.(*DashboardScreen)
	if dd.state.Explanation != nil {
		t.Error("explanation should be dismissed")
	}
	if !dd.state.Loading {
		t.Error("loading should be set for the next question fetch")
	}
	step(t, scr, cmd)
	if calls := svc.CallsFor("next-question"); len(calls) != 1 {
		t.Errorf("next-question calls = %d, want 1", len(calls))
	}
}

func TestDashboard_SessionCompleteFetchesAnalyticsOnce(t *testing.T) {
	svc := agent.NewMockService(
		agent.MockResult{Submit: &agent.SubmitResult{
			Status:            agent.StatusCompleted,
			MasteryPercentage: 85,
			Outcome:           "pass",
			NextAction:        agent.ActionSessionComplete,
		}},
		agent.MockResult{Analytics: &agent.Analytics{
			SessionID: "sess-1",
			Summary:   agent.AnalyticsSummary{TotalStudents: 10, TotalQuestions: 5},
		}},
	)
	d, repo := testDashboard(svc)
	loadQuestion(t, d)

	scr, cmd := d.Update(keyPress('p'))
	scr, cmd = step(t, scr, cmd) // submitResultMsg → analytics fetch
	scr, cmd = step(t, scr, cmd) // analyticsMsg → replace screen
	dd := scr.(*DashboardScreen)

	if dd.state.Analytics == nil {
		t.Fatal("analytics not stored")
	}
	if dd.state.Status != agent.StatusCompleted {
		t.Errorf("status = %q, want completed", dd.state.Status)
	}
	if calls := svc.CallsFor("analytics"); len(calls) != 1 {
		t.Errorf("analytics calls = %d, want 1", len(calls))
	}

	if cmd == nil {
		t.Fatal("expected a replace-screen command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the report screen")
	}

	var end *store.SessionEventData
	for i := range repo.sessionEvents {
		if repo.sessionEvents[i].Action == "complete" {
			end = &repo.sessionEvents[i]
		}
	}
	if end == nil {
		t.Fatal("no complete event journaled")
	}
	if end.SessionID != "sess-1" || end.MasteryPercentage != 85 {
		t.Errorf("journaled end event = %+v", end)
	}
}

func TestDashboard_InterventionPausesThenResumes(t *testing.T) {
	svc := agent.NewMockService(
		agent.MockResult{Submit: &agent.SubmitResult{
			Status:     agent.StatusPausedForTeacher,
			Outcome:    "fail",
			NextAction: agent.ActionTeacherIntervention,
			Message:    "Most students are stuck on this concept.",
		}},
		agent.MockResult{Session: &agent.Session{
			SessionID:       "sess-1",
			Status:          agent.StatusRemediation,
			CurrentSubtopic: "Word Problems",
		}},
		agent.MockResult{Question: testQuestion()},
	)
	d, _ := testDashboard(svc)
	loadQuestion(t, d)

	scr, cmd := d.Update(keyPress('f'))
	scr, cmd = step(t, scr, cmd) // submitResultMsg
	dd := scr.(*DashboardScreen)

	if dd.state.Status != agent.StatusPausedForTeacher {
		t.Fatalf("status = %q, want paused_for_teacher", dd.state.Status)
	}
	if dd.state.InterventionMessage == "" {
		t.Error("intervention message missing")
	}
	// An intervention needs the teacher, not a follow-up fetch.
	if cmd != nil {
		t.Error("no effect command expected for an intervention")
	}
	if dd.flow.Busy() {
		t.Error("flow should stay idle during an intervention")
	}

	scr, cmd = dd.Update(keyPress('g'))
	scr, cmd = step(t, scr, cmd) // resumedMsg
	dd = scr.(*DashboardScreen)

	// The server decides where the session resumes.
	if dd.state.Status != agent.StatusRemediation {
		t.Errorf("status = %q, want the server-reported status", dd.state.Status)
	}
	if dd.state.CurrentSubtopic != "Word Problems" {
		t.Errorf("current subtopic = %q, want the server-reported one", dd.state.CurrentSubtopic)
	}
	if dd.state.InterventionMessage != "" {
		t.Error("intervention message should be cleared")
	}

	step(t, scr, cmd) // questionMsg
	if calls := svc.CallsFor("next-question"); len(calls) != 1 {
		t.Errorf("next-question calls = %d, want 1", len(calls))
	}
}

func TestDashboard_StopConfirmation(t *testing.T) {
	svc := agent.NewMockService(
		agent.MockResult{Stop: &agent.StopResult{
			SessionID:  "sess-1",
			Status:     agent.StatusStopped,
			StopReason: "teacher_stopped",
			Analytics:  &agent.Analytics{SessionID: "sess-1"},
		}},
	)
	d, repo := testDashboard(svc)
	loadQuestion(t, d)

	scr, _ := d.Update(specialKey(tea.KeyEscape))
	dd := scr.(*DashboardScreen)
	if !dd.confirmStop {
		t.Fatal("expected stop confirmation")
	}

	scr, _ = dd.Update(keyPress('n'))
	dd = scr.(*DashboardScreen)
	if dd.confirmStop {
		t.Fatal("confirmation should be dismissed by n")
	}

	scr, _ = dd.Update(keyPress('x'))
	scr, cmd := scr.Update(keyPress('y'))
	scr, cmd = step(t, scr, cmd) // stopResultMsg
	dd = scr.(*DashboardScreen)

	if cmd == nil {
		t.Fatal("expected a replace-screen command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the report screen")
	}

	var stop *store.SessionEventData
	for i := range repo.sessionEvents {
		if repo.sessionEvents[i].Action == "stop" {
			stop = &repo.sessionEvents[i]
		}
	}
	if stop == nil {
		t.Fatal("no stop event journaled")
	}
	if stop.StopReason != "teacher_stopped" {
		t.Errorf("stop reason = %q", stop.StopReason)
	}
}

func TestDashboard_SubmitBlockedWhileLoading(t *testing.T) {
	svc := agent.NewMockService()
	d, _ := testDashboard(svc)
	loadQuestion(t, d)
	d.state.SetLoading(true)

	_, cmd := d.Update(keyPress('p'))
	if cmd != nil {
		t.Error("submit should be blocked while loading")
	}
	if len(svc.Calls) != 0 {
		t.Errorf("unexpected calls: %v", svc.Calls)
	}
}

func TestDashboard_CustomRateValidation(t *testing.T) {
	svc := agent.NewMockService(
		agent.MockResult{Submit: &agent.SubmitResult{
			Status:     agent.StatusRunning,
			Outcome:    "pass",
			NextAction: agent.ActionVerificationQuestion,
		}},
		agent.MockResult{Question: testQuestion()},
	)
	d, _ := testDashboard(svc)
	loadQuestion(t, d)

	scr, _ := d.Update(keyPress('c'))
	dd := scr.(*DashboardScreen)
	if !dd.customActive {
		t.Fatal("custom prompt should be active")
	}

	dd.customInput.SetValue("150")
	scr, cmd := dd.Update(specialKey(tea.KeyEnter))
	dd = scr.(*DashboardScreen)
	if cmd != nil || !dd.customActive {
		t.Fatal("out-of-range rate should be rejected")
	}

	dd.customInput.SetValue("70")
	scr, cmd = dd.Update(specialKey(tea.KeyEnter))
	dd = scr.(*DashboardScreen)
	if dd.customActive {
		t.Error("custom prompt should close on submit")
	}

	scr, cmd = step(t, scr, cmd) // submitResultMsg
	scr, _ = step(t, scr, cmd)   // questionMsg (verification question)

	submits := svc.CallsFor("submit-responses")
	if len(submits) != 1 {
		t.Fatalf("submit calls = %d, want 1", len(submits))
	}
	input := submits[0].Input.(agent.SubmitInput)
	correct := 0
	for _, r := range input.Responses {
		if r.IsCorrect {
			correct++
		}
	}
	if correct != 7 {
		t.Errorf("correct responses = %d, want 7 of 10 at rate 70%%", correct)
	}
}

func TestDashboard_TickCountsDownOnlyWhileRunning(t *testing.T) {
	d, _ := testDashboard(agent.NewMockService())
	loadQuestion(t, d)

	d.handleTick()
	if d.remainingMs != 59000 {
		t.Errorf("remainingMs = %d, want 59000", d.remainingMs)
	}

	d.state.SetLoading(true)
	d.handleTick()
	if d.remainingMs != 59000 {
		t.Errorf("timer should pause while loading, got %d", d.remainingMs)
	}

	d.state.SetLoading(false)
	d.remainingMs = 500
	d.handleTick()
	if d.remainingMs != 0 {
		t.Errorf("timer should clamp at zero, got %d", d.remainingMs)
	}
}

func TestDashboard_ErrorKeepsSessionUsable(t *testing.T) {
	svc := agent.NewMockService(
		agent.MockResult{Err: &agent.RemoteError{Operation: "submit-responses", Message: "server unavailable"}},
		agent.MockResult{Submit: &agent.SubmitResult{
			Status:     agent.StatusRunning,
			Outcome:    "pass",
			NextAction: agent.ActionVerificationQuestion,
		}},
		agent.MockResult{Question: testQuestion()},
	)
	d, _ := testDashboard(svc)
	loadQuestion(t, d)

	scr, cmd := d.Update(keyPress('p'))
	scr, _ = step(t, scr, cmd)
	dd := scr.(*DashboardScreen)

	if dd.state.Err == "" {
		t.Fatal("expected error message")
	}
	if dd.state.Loading {
		t.Error("loading should clear on error")
	}

	// Same batch can be retried by hand.
	scr, cmd = dd.Update(keyPress('p'))
	scr, cmd = step(t, scr, cmd) // submitResultMsg → next-question fetch
	scr, _ = step(t, scr, cmd)   // questionMsg
	dd = scr.(*DashboardScreen)
	if dd.state.Err != "" {
		t.Error("error should clear once the session moves on")
	}
}
