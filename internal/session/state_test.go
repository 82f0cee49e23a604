package session

import (
	"testing"

	"github.com/classpulse/classpulse/internal/agent"
)

func TestBegin_ClearsPriorError(t *testing.T) {
	s := NewState()
	s.SetError("boom")

	s.Begin("sess-1", agent.StatusInitialized, "Simple Linear Equations")

	if s.SessionID != "sess-1" {
		t.Errorf("SessionID = %q", s.SessionID)
	}
	if s.Err != "" {
		t.Errorf("Err = %q, want cleared", s.Err)
	}
	if s.CurrentSubtopic != "Simple Linear Equations" {
		t.Errorf("CurrentSubtopic = %q", s.CurrentSubtopic)
	}
}

func TestReceiveQuestion_ReplacesWholesale(t *testing.T) {
	s := NewState()
	s.SetLoading(true)
	s.ReceiveQuestion(&agent.Question{QuestionID: "q1", CurrentSubtopic: "A"})

	q2 := &agent.Question{QuestionID: "q2", CurrentSubtopic: "B"}
	s.ReceiveQuestion(q2)

	if s.CurrentQuestion != q2 {
		t.Error("question not replaced")
	}
	if s.CurrentSubtopic != "B" {
		t.Errorf("CurrentSubtopic = %q, want B", s.CurrentSubtopic)
	}
	if s.Loading {
		t.Error("loading flag not cleared")
	}
}

func TestUpdateMetrics_OverwritesAllThree(t *testing.T) {
	s := NewState()
	s.UpdateMetrics(Metrics{
		QuestionConsistency: 64,
		ClassConsistency: agent.ClassConsistency{
			AverageScore: 64,
			Distribution: agent.Distribution{High: 3, Medium: 4, Low: 3},
		},
		MasteryPercentage: 58,
	})

	if s.QuestionConsistency != 64 || s.MasteryPercentage != 58 {
		t.Errorf("metrics = %v/%v", s.QuestionConsistency, s.MasteryPercentage)
	}
	if s.ClassConsistency == nil || s.ClassConsistency.Distribution.Medium != 4 {
		t.Errorf("class consistency = %+v", s.ClassConsistency)
	}
}

func TestSetNextAction_InterventionMessage(t *testing.T) {
	s := NewState()

	s.SetNextAction(agent.ActionTeacherIntervention, "Class needs help with transposition")
	if s.InterventionMessage != "Class needs help with transposition" {
		t.Errorf("InterventionMessage = %q", s.InterventionMessage)
	}

	// A non-intervention action leaves the stored message alone.
	s.SetNextAction(agent.ActionShowExplanation, "")
	if s.InterventionMessage != "Class needs help with transposition" {
		t.Errorf("InterventionMessage = %q, want preserved", s.InterventionMessage)
	}

	// An intervention without a message clears it.
	s.SetNextAction(agent.ActionTeacherIntervention, "")
	if s.InterventionMessage != "" {
		t.Errorf("InterventionMessage = %q, want cleared", s.InterventionMessage)
	}
}

func TestSetIntervention_ForcesPausedStatus(t *testing.T) {
	s := NewState()
	s.Status = agent.StatusRunning

	s.SetIntervention("go talk to the class")
	if s.Status != agent.StatusPausedForTeacher {
		t.Errorf("Status = %q", s.Status)
	}

	s.ClearIntervention()
	if s.InterventionMessage != "" {
		t.Error("message not cleared")
	}
	if s.Status != agent.StatusPausedForTeacher {
		t.Error("ClearIntervention must not change status")
	}
}

func TestUpdateStatus_PartialMerge(t *testing.T) {
	s := NewState()
	s.Begin("sess-1", agent.StatusRunning, "A")
	s.QuestionsAsked = 4
	s.SubtopicOutcomes = []agent.SubtopicOutcome{{Subtopic: "A"}}

	s.UpdateStatus(StatusUpdate{Status: agent.StatusEvaluating})

	if s.Status != agent.StatusEvaluating {
		t.Errorf("Status = %q", s.Status)
	}
	if s.CurrentSubtopic != "A" {
		t.Errorf("CurrentSubtopic = %q, want untouched", s.CurrentSubtopic)
	}
	if s.QuestionsAsked != 4 {
		t.Errorf("QuestionsAsked = %d, want untouched", s.QuestionsAsked)
	}
	if len(s.SubtopicOutcomes) != 1 {
		t.Error("SubtopicOutcomes must be untouched when payload omits them")
	}

	asked := 7
	count := 2
	s.UpdateStatus(StatusUpdate{
		Status:            agent.StatusRunning,
		CurrentSubtopic:   "B",
		SubtopicOutcomes:  []agent.SubtopicOutcome{{Subtopic: "A"}, {Subtopic: "B"}},
		QuestionsAsked:    &asked,
		InterventionCount: &count,
	})

	if s.QuestionsAsked != 7 || s.InterventionCount != 2 {
		t.Errorf("counts = %d/%d", s.QuestionsAsked, s.InterventionCount)
	}
	if len(s.SubtopicOutcomes) != 2 {
		t.Errorf("outcomes = %d, want 2", len(s.SubtopicOutcomes))
	}
}

func TestSetAnalytics_ForcesCompleted(t *testing.T) {
	s := NewState()
	s.Begin("sess-1", agent.StatusRunning, "A")
	s.SetLoading(true)

	s.SetAnalytics(&agent.Analytics{SessionID: "sess-1"})

	if s.Status != agent.StatusCompleted {
		t.Errorf("Status = %q, want completed", s.Status)
	}
	if s.Loading {
		t.Error("loading flag not cleared")
	}
}

func TestSetError_ClearsLoading(t *testing.T) {
	s := NewState()
	s.SetLoading(true)
	s.SetError("network unreachable")

	if s.Err != "network unreachable" {
		t.Errorf("Err = %q", s.Err)
	}
	if s.Loading {
		t.Error("loading flag not cleared")
	}
}

func TestReset_ReturnsToInitial(t *testing.T) {
	s := NewState()
	s.Begin("sess-1", agent.StatusRunning, "A")
	s.ReceiveQuestion(&agent.Question{QuestionID: "q1"})
	s.SetNextAction(agent.ActionSessionComplete, "")
	s.SetAnalytics(&agent.Analytics{})

	s.Reset()

	if s.Active() {
		t.Error("state still active after reset")
	}
	if s.CurrentQuestion != nil || s.Analytics != nil || s.NextAction != "" {
		t.Errorf("state not empty after reset: %+v", s)
	}
}
