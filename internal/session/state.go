package session

import (
	"github.com/classpulse/classpulse/internal/agent"
)

// State is the single client-side mirror of a quiz session. The remote
// service owns the truth; this struct only reflects what it last told us.
//
// Mutation happens exclusively through the named transitions below. Each
// transition is deterministic in (current state, payload), and there is one
// writer at a time — the Bubble Tea update loop — so no locking is needed.
type State struct {
	// Session identity.
	SessionID       string
	Status          agent.SessionStatus
	CurrentSubtopic string

	// Current question. Replaced wholesale, never partially mutated.
	CurrentQuestion *agent.Question

	// Metrics, always 0-100 after adapter normalization.
	QuestionConsistency float64
	ClassConsistency    *agent.ClassConsistency
	MasteryPercentage   float64

	// Flow control.
	NextAction          agent.NextAction // empty when no action is pending
	Explanation         *agent.Explanation
	InterventionMessage string

	// Progress.
	SubtopicOutcomes  []agent.SubtopicOutcome
	QuestionsAsked    int
	InterventionCount int

	// Final report. Non-nil only after session end.
	Analytics *agent.Analytics

	// UI flags.
	Loading bool
	Err     string
}

// NewState returns the initial empty state.
func NewState() *State {
	return &State{}
}

// Active reports whether a session has been started and not reset.
func (s *State) Active() bool {
	return s.SessionID != ""
}

// Begin records a freshly started session and clears any prior error.
func (s *State) Begin(sessionID string, status agent.SessionStatus, subtopic string) {
	s.SessionID = sessionID
	s.Status = status
	s.CurrentSubtopic = subtopic
	s.Err = ""
}

// ReceiveQuestion replaces the current question wholesale, tracks the
// question's subtopic, and clears the loading flag.
func (s *State) ReceiveQuestion(q *agent.Question) {
	s.CurrentQuestion = q
	if q != nil && q.CurrentSubtopic != "" {
		s.CurrentSubtopic = q.CurrentSubtopic
	}
	s.Loading = false
	s.Err = ""
}

// Metrics is the payload for UpdateMetrics. Values must already be
// normalized to 0-100 by the adapter.
type Metrics struct {
	QuestionConsistency float64
	ClassConsistency    agent.ClassConsistency
	MasteryPercentage   float64
}

// UpdateMetrics overwrites the three metric fields.
func (s *State) UpdateMetrics(m Metrics) {
	s.QuestionConsistency = m.QuestionConsistency
	cc := m.ClassConsistency
	s.ClassConsistency = &cc
	s.MasteryPercentage = m.MasteryPercentage
}

// SetNextAction stores the pending server instruction. For a teacher
// intervention the accompanying message replaces the stored intervention
// message (clearing it when the server sent none).
func (s *State) SetNextAction(action agent.NextAction, message string) {
	s.NextAction = action
	if action == agent.ActionTeacherIntervention {
		s.InterventionMessage = message
	}
}

// ClearNextAction consumes the pending instruction.
func (s *State) ClearNextAction() {
	s.NextAction = ""
}

// SetExplanation shows the transient explanation overlay.
func (s *State) SetExplanation(exp *agent.Explanation) {
	s.Explanation = exp
	s.Loading = false
	s.Err = ""
}

// ClearExplanation hides the explanation overlay.
func (s *State) ClearExplanation() {
	s.Explanation = nil
}

// SetIntervention pauses the session for the teacher with a message.
func (s *State) SetIntervention(message string) {
	s.InterventionMessage = message
	s.Status = agent.StatusPausedForTeacher
}

// ClearIntervention drops the intervention message without touching status;
// the follow-up status update from the resume call moves the status on.
func (s *State) ClearIntervention() {
	s.InterventionMessage = ""
}

// StatusUpdate is a partial status snapshot. Zero-valued fields leave the
// corresponding state untouched.
type StatusUpdate struct {
	Status            agent.SessionStatus
	CurrentSubtopic   string
	SubtopicOutcomes  []agent.SubtopicOutcome
	QuestionsAsked    *int
	InterventionCount *int
}

// UpdateStatus merges a partial status snapshot.
func (s *State) UpdateStatus(u StatusUpdate) {
	if u.Status != "" {
		s.Status = u.Status
	}
	if u.CurrentSubtopic != "" {
		s.CurrentSubtopic = u.CurrentSubtopic
	}
	if u.SubtopicOutcomes != nil {
		s.SubtopicOutcomes = u.SubtopicOutcomes
	}
	if u.QuestionsAsked != nil {
		s.QuestionsAsked = *u.QuestionsAsked
	}
	if u.InterventionCount != nil {
		s.InterventionCount = *u.InterventionCount
	}
}

// SetAnalytics stores the final report and forces the completed status.
func (s *State) SetAnalytics(a *agent.Analytics) {
	s.Analytics = a
	s.Status = agent.StatusCompleted
	s.Loading = false
	s.Err = ""
}

// SetLoading flips the loading flag.
func (s *State) SetLoading(loading bool) {
	s.Loading = loading
}

// SetError records a failure message and clears the loading flag.
func (s *State) SetError(msg string) {
	s.Err = msg
	s.Loading = false
}

// Reset returns to the initial empty state.
func (s *State) Reset() {
	*s = State{}
}
