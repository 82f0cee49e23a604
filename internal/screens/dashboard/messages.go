package dashboard

import (
	"time"

	"github.com/classpulse/classpulse/internal/agent"
)

// Every response message carries the session ID it was fetched for. The
// screen drops messages whose ID no longer matches the live session, so a
// slow response from an abandoned session cannot corrupt the current one.

type questionMsg struct {
	SessionID string
	Question  *agent.Question
	Err       error
}

type submitResultMsg struct {
	SessionID string
	Preset    string
	Correct   int
	Total     int
	Result    *agent.SubmitResult
	Err       error
}

type explanationMsg struct {
	SessionID   string
	Explanation *agent.Explanation
	Err         error
}

type statusMsg struct {
	SessionID string
	Snapshot  *agent.StatusSnapshot
	Err       error
}

type analyticsMsg struct {
	SessionID string
	Analytics *agent.Analytics
	Err       error
}

type stopResultMsg struct {
	SessionID string
	Result    *agent.StopResult
	Err       error
}

type resumedMsg struct {
	SessionID string
	Session   *agent.Session
	Err       error
}

// timerTickMsg drives the per-question countdown.
type timerTickMsg time.Time
