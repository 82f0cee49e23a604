package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SetupDefaults is the last session setup the teacher submitted, restored
// into the setup form on the next launch.
type SetupDefaults struct {
	SchoolID             string   `json:"schoolId,omitempty"`
	TeacherID            string   `json:"teacherId,omitempty"`
	ClassLevel           int      `json:"classLevel,omitempty"`
	ClassName            string   `json:"className,omitempty"`
	Board                string   `json:"board,omitempty"`
	Subject              string   `json:"subject,omitempty"`
	Chapter              string   `json:"chapter,omitempty"`
	Topic                string   `json:"topic,omitempty"`
	Subtopics            []string `json:"subtopics,omitempty"`
	ProficiencyThreshold int      `json:"proficiencyThreshold,omitempty"`
	MinimumQuestions     int      `json:"minimumQuestions,omitempty"`
}

// SnapshotData captures persisted teacher preferences.
type SnapshotData struct {
	Version   int            `json:"version"`
	LastSetup *SetupDefaults `json:"lastSetup,omitempty"`
}

// Snapshot represents a point-in-time capture of preference state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages preference snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures one session lifecycle event.
type SessionEventData struct {
	SessionID         string
	Action            string // start, stop, complete
	Subject           string
	Chapter           string
	Topic             string
	ClassName         string
	ClassLevel        int
	Subtopics         []string
	MasteryPercentage float64
	QuestionsAsked    int
	InterventionCount int
	StopReason        string
}

// SubmissionEventData captures one simulated answer batch and its evaluation.
type SubmissionEventData struct {
	SessionID           string
	QuestionID          string
	Subtopic            string
	Preset              string
	ResponseCount       int
	CorrectCount        int
	QuestionConsistency float64
	MasteryPercentage   float64
	Outcome             string
	NextAction          string
}

// APIRequestEventData captures a single remote service call.
type APIRequestEventData struct {
	Operation    string
	SessionID    string
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// SessionRecord is one session as listed in the local history.
type SessionRecord struct {
	SessionID         string
	Timestamp         time.Time
	Action            string
	Subject           string
	Chapter           string
	Topic             string
	ClassName         string
	ClassLevel        int
	Subtopics         []string
	MasteryPercentage float64
	QuestionsAsked    int
	InterventionCount int
	StopReason        string
}

// SubmissionRecord is one submission as listed under a history session.
type SubmissionRecord struct {
	Timestamp           time.Time
	QuestionID          string
	Subtopic            string
	Preset              string
	ResponseCount       int
	CorrectCount        int
	QuestionConsistency float64
	MasteryPercentage   float64
	Outcome             string
	NextAction          string
}

// EventRepo provides append and query access to the local session journal.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendSubmission records an answer batch and its evaluation.
	AppendSubmission(ctx context.Context, data SubmissionEventData) error

	// AppendAPIRequest records a remote service call.
	AppendAPIRequest(ctx context.Context, data APIRequestEventData) error

	// SessionHistory returns lifecycle events, newest first.
	SessionHistory(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// SubmissionsForSession returns a session's submissions in order.
	SubmissionsForSession(ctx context.Context, sessionID string) ([]SubmissionRecord, error)
}
