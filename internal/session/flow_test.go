package session

import (
	"testing"

	"github.com/classpulse/classpulse/internal/agent"
)

func TestObserve_NoSignal(t *testing.T) {
	f := NewFlowController()
	s := NewState()

	if got := f.Observe(s); got != EffectNone {
		t.Errorf("Observe = %v, want none", got)
	}
}

func TestObserve_SessionCompleteYieldsOneAnalyticsEffect(t *testing.T) {
	f := NewFlowController()
	s := NewState()
	s.SetNextAction(agent.ActionSessionComplete, "")

	if got := f.Observe(s); got != EffectFetchAnalytics {
		t.Fatalf("Observe = %v, want fetch_analytics", got)
	}
	if s.NextAction != "" {
		t.Error("signal not cleared before effect was handed out")
	}
	if !f.Busy() {
		t.Error("controller should be busy while the fetch is in flight")
	}

	// Re-observation while the fetch is in flight must be a no-op even if
	// the server re-sends the same signal.
	s.SetNextAction(agent.ActionSessionComplete, "")
	if got := f.Observe(s); got != EffectNone {
		t.Errorf("second Observe = %v, want none", got)
	}
}

func TestObserve_FinishReArms(t *testing.T) {
	f := NewFlowController()
	s := NewState()

	s.SetNextAction(agent.ActionShowExplanation, "")
	if got := f.Observe(s); got != EffectFetchExplanation {
		t.Fatalf("Observe = %v, want fetch_explanation", got)
	}
	f.Finish()

	s.SetNextAction(agent.ActionVerificationQuestion, "")
	if got := f.Observe(s); got != EffectFetchQuestion {
		t.Errorf("Observe after Finish = %v, want fetch_question", got)
	}
}

func TestObserve_QuestionActions(t *testing.T) {
	for _, action := range []agent.NextAction{agent.ActionVerificationQuestion, agent.ActionNextSubtopic} {
		f := NewFlowController()
		s := NewState()
		s.SetNextAction(action, "")

		if got := f.Observe(s); got != EffectFetchQuestion {
			t.Errorf("Observe(%s) = %v, want fetch_question", action, got)
		}
	}
}

func TestObserve_InterventionConsumesWithoutEffect(t *testing.T) {
	f := NewFlowController()
	s := NewState()
	s.SetNextAction(agent.ActionTeacherIntervention, "pause and regroup")

	if got := f.Observe(s); got != EffectNone {
		t.Errorf("Observe = %v, want none", got)
	}
	if s.NextAction != "" {
		t.Error("intervention signal not consumed")
	}
	if f.Busy() {
		t.Error("intervention must not claim the in-flight slot")
	}
}

func TestObserve_BlockedWhileLoading(t *testing.T) {
	f := NewFlowController()
	s := NewState()
	s.SetLoading(true)
	s.SetNextAction(agent.ActionShowExplanation, "")

	if got := f.Observe(s); got != EffectNone {
		t.Errorf("Observe = %v, want none while loading", got)
	}
	if s.NextAction == "" {
		t.Error("signal must survive until the loading flag clears")
	}

	s.SetLoading(false)
	if got := f.Observe(s); got != EffectFetchExplanation {
		t.Errorf("Observe after load = %v, want fetch_explanation", got)
	}
}
