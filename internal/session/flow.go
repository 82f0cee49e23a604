package session

import (
	"github.com/classpulse/classpulse/internal/agent"
)

// Effect is the single follow-up call a pending next action demands.
type Effect int

const (
	EffectNone Effect = iota
	EffectFetchExplanation
	EffectFetchQuestion
	EffectFetchAnalytics
)

func (e Effect) String() string {
	switch e {
	case EffectFetchExplanation:
		return "fetch_explanation"
	case EffectFetchQuestion:
		return "fetch_question"
	case EffectFetchAnalytics:
		return "fetch_analytics"
	default:
		return "none"
	}
}

// FlowController turns the server-supplied next-action signal into exactly
// one side effect per signal. The signal is cleared from the state before
// the effect is handed out, so a duplicate notification of the same value
// finds nothing to act on; the processing flag additionally blocks a second
// effect from starting while the first is still in flight.
type FlowController struct {
	processing bool
}

// NewFlowController returns an idle controller.
func NewFlowController() *FlowController {
	return &FlowController{}
}

// Observe inspects the state and returns the effect the pending action
// demands, or EffectNone. It never triggers without a pending signal, never
// while the state is loading, and never while a previous effect is in
// flight. Consuming the signal and claiming the in-flight slot happen
// together, before any effect runs.
func (f *FlowController) Observe(s *State) Effect {
	if s.NextAction == "" || s.Loading || f.processing {
		return EffectNone
	}

	action := s.NextAction
	s.ClearNextAction()

	switch action {
	case agent.ActionShowExplanation:
		f.processing = true
		return EffectFetchExplanation

	case agent.ActionVerificationQuestion, agent.ActionNextSubtopic:
		f.processing = true
		return EffectFetchQuestion

	case agent.ActionSessionComplete:
		f.processing = true
		return EffectFetchAnalytics

	case agent.ActionTeacherIntervention:
		// No fetch: the paused screen is already visible because the
		// submit result set status to paused_for_teacher.
		return EffectNone
	}

	return EffectNone
}

// Finish releases the in-flight slot once the effect's call has resolved,
// successfully or not.
func (f *FlowController) Finish() {
	f.processing = false
}

// Busy reports whether an effect is in flight.
func (f *FlowController) Busy() bool {
	return f.processing
}
