package dashboard

import (
	"context"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/classpulse/classpulse/internal/agent"
	"github.com/classpulse/classpulse/internal/router"
	"github.com/classpulse/classpulse/internal/screen"
	"github.com/classpulse/classpulse/internal/screens/analytics"
	sess "github.com/classpulse/classpulse/internal/session"
	"github.com/classpulse/classpulse/internal/simulate"
	"github.com/classpulse/classpulse/internal/store"
	"github.com/classpulse/classpulse/internal/ui/components"
	"github.com/classpulse/classpulse/internal/ui/layout"
)

// DashboardScreen hosts a live quiz session: the current question, the class
// metrics, the response simulator, and the follow-up flow the server drives
// through next-action signals.
type DashboardScreen struct {
	svc       agent.Service
	eventRepo store.EventRepo
	roster    []simulate.Student
	gen       *simulate.Generator

	state *sess.State
	flow  *sess.FlowController

	startInput agent.StartSessionInput

	customInput  components.TextInput
	customActive bool
	confirmStop  bool
	remainingMs  int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a dashboard for a freshly started session.
func New(svc agent.Service, eventRepo store.EventRepo, roster []simulate.Student, session *agent.Session, input agent.StartSessionInput) *DashboardScreen {
	if len(roster) == 0 {
		roster = simulate.DemoRoster()
	}

	state := sess.NewState()
	state.Begin(session.SessionID, session.Status, session.CurrentSubtopic)

	return &DashboardScreen{
		svc:         svc,
		eventRepo:   eventRepo,
		roster:      roster,
		gen:         simulate.NewGenerator(nil),
		state:       state,
		flow:        sess.NewFlowController(),
		startInput:  input,
		customInput: components.NewTextInput("Pass rate %", "60", true, 3),
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	d.state.SetLoading(true)
	return tea.Batch(d.fetchQuestion(), tickCmd())
}

func (d *DashboardScreen) Title() string {
	return "Live Session"
}

// SessionInfo feeds the header's session and status labels.
func (d *DashboardScreen) SessionInfo() (string, string) {
	label := d.startInput.ClassName
	if label == "" {
		label = shortID(d.state.SessionID)
	}
	return label, string(d.state.Status)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	switch {
	case d.confirmStop:
		return []layout.KeyHint{
			{Key: "Y", Description: "Stop session"},
			{Key: "N", Description: "Keep going"},
		}
	case d.customActive:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit batch"},
			{Key: "Esc", Description: "Cancel"},
		}
	case d.state.Explanation != nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	case d.state.Status == agent.StatusPausedForTeacher:
		return []layout.KeyHint{
			{Key: "G", Description: "Resume session"},
			{Key: "X", Description: "Stop"},
		}
	default:
		return []layout.KeyHint{
			{Key: "P/F/R", Description: "Pass/Fail/Random batch"},
			{Key: "C", Description: "Custom rate"},
			{Key: "S", Description: "Refresh status"},
			{Key: "X", Description: "Stop"},
		}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionMsg:
		return d.handleQuestion(msg)
	case submitResultMsg:
		return d.handleSubmitResult(msg)
	case explanationMsg:
		return d.handleExplanation(msg)
	case statusMsg:
		return d.handleStatus(msg)
	case analyticsMsg:
		return d.handleAnalytics(msg)
	case stopResultMsg:
		return d.handleStopResult(msg)
	case resumedMsg:
		return d.handleResumed(msg)
	case timerTickMsg:
		return d.handleTick()
	case tea.KeyMsg:
		return d.handleKey(msg)
	}
	return d, nil
}

// stale reports whether a response belongs to a session this screen no
// longer shows.
func (d *DashboardScreen) stale(sessionID string) bool {
	return sessionID != d.state.SessionID
}

func (d *DashboardScreen) handleQuestion(msg questionMsg) (screen.Screen, tea.Cmd) {
	if d.stale(msg.SessionID) {
		return d, nil
	}
	d.flow.Finish()
	if msg.Err != nil {
		d.state.SetError(msg.Err.Error())
		return d, nil
	}
	d.state.ReceiveQuestion(msg.Question)
	d.remainingMs = msg.Question.RuntimeMs
	if d.state.Status == agent.StatusInitialized {
		d.state.UpdateStatus(sess.StatusUpdate{Status: agent.StatusRunning})
	}
	return d, nil
}

func (d *DashboardScreen) handleSubmitResult(msg submitResultMsg) (screen.Screen, tea.Cmd) {
	if d.stale(msg.SessionID) {
		return d, nil
	}
	if msg.Err != nil {
		d.state.SetError(msg.Err.Error())
		return d, nil
	}

	res := msg.Result
	d.state.SetLoading(false)
	d.state.UpdateMetrics(sess.Metrics{
		QuestionConsistency: res.QuestionConsistency,
		ClassConsistency:    res.ClassConsistency,
		MasteryPercentage:   res.MasteryPercentage,
	})
	d.state.UpdateStatus(sess.StatusUpdate{Status: res.Status})
	if res.NextAction == agent.ActionTeacherIntervention {
		d.state.SetIntervention(res.Message)
	}
	d.state.SetNextAction(res.NextAction, res.Message)

	d.journalSubmission(msg)

	return d, d.observeFlow()
}

func (d *DashboardScreen) handleExplanation(msg explanationMsg) (screen.Screen, tea.Cmd) {
	if d.stale(msg.SessionID) {
		return d, nil
	}
	d.flow.Finish()
	if msg.Err != nil {
		d.state.SetError(msg.Err.Error())
		return d, nil
	}
	d.state.SetExplanation(msg.Explanation)
	return d, nil
}

func (d *DashboardScreen) handleStatus(msg statusMsg) (screen.Screen, tea.Cmd) {
	if d.stale(msg.SessionID) {
		return d, nil
	}
	if msg.Err != nil {
		d.state.SetError(msg.Err.Error())
		return d, nil
	}
	snap := msg.Snapshot
	d.state.SetLoading(false)
	d.state.UpdateMetrics(sess.Metrics{
		QuestionConsistency: d.state.QuestionConsistency,
		ClassConsistency:    snap.ClassConsistency,
		MasteryPercentage:   snap.MasteryPercentage,
	})
	asked, interventions := snap.QuestionsAsked, snap.InterventionCount
	d.state.UpdateStatus(sess.StatusUpdate{
		Status:            snap.Status,
		CurrentSubtopic:   snap.CurrentSubtopic,
		SubtopicOutcomes:  snap.SubtopicOutcomes,
		QuestionsAsked:    &asked,
		InterventionCount: &interventions,
	})
	return d, nil
}

func (d *DashboardScreen) handleAnalytics(msg analyticsMsg) (screen.Screen, tea.Cmd) {
	if d.stale(msg.SessionID) {
		return d, nil
	}
	d.flow.Finish()
	if msg.Err != nil {
		d.state.SetError(msg.Err.Error())
		return d, nil
	}
	d.state.SetAnalytics(msg.Analytics)
	d.journalEnd("complete", "")
	return d, d.showAnalytics()
}

func (d *DashboardScreen) handleStopResult(msg stopResultMsg) (screen.Screen, tea.Cmd) {
	if d.stale(msg.SessionID) {
		return d, nil
	}
	if msg.Err != nil {
		d.state.SetError(msg.Err.Error())
		return d, nil
	}
	if msg.Result.Analytics != nil {
		d.state.SetAnalytics(msg.Result.Analytics)
	}
	d.state.UpdateStatus(sess.StatusUpdate{Status: agent.StatusStopped})
	d.state.SetLoading(false)
	d.journalEnd("stop", msg.Result.StopReason)
	if d.state.Analytics != nil {
		return d, d.showAnalytics()
	}
	return d, func() tea.Msg { return router.PopScreenMsg{} }
}

func (d *DashboardScreen) handleResumed(msg resumedMsg) (screen.Screen, tea.Cmd) {
	if d.stale(msg.SessionID) {
		return d, nil
	}
	if msg.Err != nil {
		d.state.SetError(msg.Err.Error())
		return d, nil
	}
	d.state.ClearIntervention()
	// The server decides where the session resumes; running is only the
	// fallback for an empty response body.
	update := sess.StatusUpdate{Status: agent.StatusRunning}
	if msg.Session != nil {
		if msg.Session.Status != "" {
			update.Status = msg.Session.Status
		}
		update.CurrentSubtopic = msg.Session.CurrentSubtopic
	}
	d.state.UpdateStatus(update)
	d.state.SetLoading(true)
	return d, d.fetchQuestion()
}

func (d *DashboardScreen) handleTick() (screen.Screen, tea.Cmd) {
	if d.state.CurrentQuestion != nil && !d.state.Loading && d.state.Status == agent.StatusRunning {
		d.remainingMs -= 1000
		if d.remainingMs < 0 {
			d.remainingMs = 0
		}
	}
	return d, tickCmd()
}

func (d *DashboardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if d.confirmStop {
		switch key {
		case "y", "Y":
			d.confirmStop = false
			return d, d.stopSession()
		case "n", "N", "esc":
			d.confirmStop = false
		}
		return d, nil
	}

	if d.customActive {
		switch key {
		case "enter":
			rate, err := d.customInput.NumericValue()
			if err != nil || rate < 0 || rate > 100 {
				d.customInput.SetError("enter a value between 0 and 100")
				return d, nil
			}
			d.customActive = false
			return d, d.submitBatch(simulate.PresetCustom, float64(rate)/100)
		case "esc":
			d.customActive = false
			return d, nil
		}
		var cmd tea.Cmd
		d.customInput, cmd = d.customInput.Update(msg)
		return d, cmd
	}

	// Explanation overlay: dismissing it moves the session on to the next
	// question.
	if d.state.Explanation != nil {
		if key == "enter" || key == " " || key == "space" {
			d.state.ClearExplanation()
			d.state.SetLoading(true)
			return d, d.fetchQuestion()
		}
		return d, nil
	}

	if d.state.Status == agent.StatusPausedForTeacher {
		switch key {
		case "g", "G", "enter":
			return d, d.resumeSession()
		case "x", "X", "esc":
			d.confirmStop = true
		}
		return d, nil
	}

	switch key {
	case "p", "P":
		return d, d.submitBatch(simulate.PresetPass, 0)
	case "f", "F":
		return d, d.submitBatch(simulate.PresetFail, 0)
	case "r", "R":
		return d, d.submitBatch(simulate.PresetRandom, 0)
	case "c", "C":
		if d.canSubmit() {
			d.customActive = true
			d.customInput.SetError("")
			return d, d.customInput.Focus()
		}
	case "s", "S":
		return d, d.refreshStatus()
	case "x", "X", "esc":
		d.confirmStop = true
	}

	return d, nil
}

// canSubmit reports whether a batch may be sent right now.
func (d *DashboardScreen) canSubmit() bool {
	return d.state.CurrentQuestion != nil &&
		!d.state.Loading &&
		!d.flow.Busy() &&
		d.state.Status == agent.StatusRunning
}

// observeFlow asks the controller for the pending signal's effect and turns
// it into a fetch command.
func (d *DashboardScreen) observeFlow() tea.Cmd {
	switch d.flow.Observe(d.state) {
	case sess.EffectFetchExplanation:
		d.state.SetLoading(true)
		return d.fetchExplanation()
	case sess.EffectFetchQuestion:
		d.state.SetLoading(true)
		return d.fetchQuestion()
	case sess.EffectFetchAnalytics:
		d.state.SetLoading(true)
		return d.fetchAnalytics()
	}
	return nil
}

func (d *DashboardScreen) fetchQuestion() tea.Cmd {
	svc, id := d.svc, d.state.SessionID
	return func() tea.Msg {
		q, err := svc.NextQuestion(context.Background(), id)
		return questionMsg{SessionID: id, Question: q, Err: err}
	}
}

func (d *DashboardScreen) fetchExplanation() tea.Cmd {
	svc, id := d.svc, d.state.SessionID
	return func() tea.Msg {
		exp, err := svc.Explanation(context.Background(), id)
		return explanationMsg{SessionID: id, Explanation: exp, Err: err}
	}
}

func (d *DashboardScreen) fetchAnalytics() tea.Cmd {
	svc, id := d.svc, d.state.SessionID
	return func() tea.Msg {
		a, err := svc.Analytics(context.Background(), id)
		return analyticsMsg{SessionID: id, Analytics: a, Err: err}
	}
}

func (d *DashboardScreen) refreshStatus() tea.Cmd {
	d.state.SetLoading(true)
	svc, id := d.svc, d.state.SessionID
	return func() tea.Msg {
		snap, err := svc.Status(context.Background(), id)
		return statusMsg{SessionID: id, Snapshot: snap, Err: err}
	}
}

func (d *DashboardScreen) stopSession() tea.Cmd {
	d.state.SetLoading(true)
	svc, id := d.svc, d.state.SessionID
	return func() tea.Msg {
		res, err := svc.StopSession(context.Background(), id)
		return stopResultMsg{SessionID: id, Result: res, Err: err}
	}
}

func (d *DashboardScreen) resumeSession() tea.Cmd {
	d.state.SetLoading(true)
	svc, id := d.svc, d.state.SessionID
	return func() tea.Msg {
		session, err := svc.Resume(context.Background(), id)
		return resumedMsg{SessionID: id, Session: session, Err: err}
	}
}

// submitBatch fabricates one response per student and sends the batch.
func (d *DashboardScreen) submitBatch(preset simulate.Preset, rate float64) tea.Cmd {
	if !d.canSubmit() {
		return nil
	}

	q := d.state.CurrentQuestion
	correct := "Correct Answer"
	wrong := []string{"Wrong A", "Wrong B", "Wrong C"}
	if len(q.Options) > 0 {
		correct = q.Options[0]
		wrong = simulate.WrongOptions(q.Options, correct)
	}

	responses := d.gen.Generate(preset, d.roster, correct, wrong, rate)
	correctCount := 0
	for _, r := range responses {
		if r.IsCorrect {
			correctCount++
		}
	}

	d.state.SetLoading(true)
	svc, id := d.svc, d.state.SessionID
	input := agent.SubmitInput{QuestionID: q.QuestionID, Responses: responses}
	return func() tea.Msg {
		res, err := svc.SubmitResponses(context.Background(), id, input)
		return submitResultMsg{
			SessionID: id,
			Preset:    string(preset),
			Correct:   correctCount,
			Total:     len(responses),
			Result:    res,
			Err:       err,
		}
	}
}

func (d *DashboardScreen) journalSubmission(msg submitResultMsg) {
	if d.eventRepo == nil || d.state.CurrentQuestion == nil {
		return
	}
	_ = d.eventRepo.AppendSubmission(context.Background(), store.SubmissionEventData{
		SessionID:           msg.SessionID,
		QuestionID:          d.state.CurrentQuestion.QuestionID,
		Subtopic:            d.state.CurrentSubtopic,
		Preset:              msg.Preset,
		ResponseCount:       msg.Total,
		CorrectCount:        msg.Correct,
		QuestionConsistency: msg.Result.QuestionConsistency,
		MasteryPercentage:   msg.Result.MasteryPercentage,
		Outcome:             msg.Result.Outcome,
		NextAction:          string(msg.Result.NextAction),
	})
}

func (d *DashboardScreen) journalEnd(action, stopReason string) {
	if d.eventRepo == nil {
		return
	}
	_ = d.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:         d.state.SessionID,
		Action:            action,
		Subject:           d.startInput.Subject,
		Chapter:           d.startInput.Chapter,
		Topic:             d.startInput.Topic,
		ClassName:         d.startInput.ClassName,
		ClassLevel:        d.startInput.ClassLevel,
		MasteryPercentage: d.state.MasteryPercentage,
		QuestionsAsked:    d.state.QuestionsAsked,
		InterventionCount: d.state.InterventionCount,
		StopReason:        stopReason,
	})
}

func (d *DashboardScreen) showAnalytics() tea.Cmd {
	a := d.state.Analytics
	status := d.state.Status
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: analytics.New(a, status),
		}
	}
}

func formatMs(ms int) string {
	secs := ms / 1000
	return strconv.Itoa(secs/60) + ":" + pad(secs%60)
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
