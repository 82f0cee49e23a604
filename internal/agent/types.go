package agent

// SessionStatus is the server-reported lifecycle state of a quiz session.
type SessionStatus string

const (
	StatusInitialized      SessionStatus = "initialized"
	StatusRunning          SessionStatus = "running"
	StatusEvaluating       SessionStatus = "evaluating"
	StatusRemediation      SessionStatus = "remediation"
	StatusPausedForTeacher SessionStatus = "paused_for_teacher"
	StatusCompleted        SessionStatus = "completed"
	StatusStopped          SessionStatus = "stopped"
)

// NextAction is the server's instruction for what the client must do after
// a submission. At most one action is pending at a time.
type NextAction string

const (
	ActionShowExplanation      NextAction = "show_explanation"
	ActionVerificationQuestion NextAction = "verification_question"
	ActionTeacherIntervention  NextAction = "teacher_intervention"
	ActionNextSubtopic         NextAction = "next_subtopic"
	ActionSessionComplete      NextAction = "session_complete"
)

// Difficulty is the server-assigned difficulty tier of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuestionKind distinguishes the first question on a subtopic from the
// follow-up verification question the service issues after weak consistency.
type QuestionKind string

const (
	KindInitial      QuestionKind = "initial"
	KindVerification QuestionKind = "verification"
)

// PerformanceBand buckets a student's session performance.
type PerformanceBand string

const (
	BandHigh   PerformanceBand = "high"
	BandMedium PerformanceBand = "medium"
	BandLow    PerformanceBand = "low"
)

// StartSessionInput configures a new session.
type StartSessionInput struct {
	SchoolID              string   `json:"schoolId"`
	ClassLevel            int      `json:"classLevel"`
	ClassName             string   `json:"className"`
	Subject               string   `json:"subject"`
	Chapter               string   `json:"chapter"`
	Topic                 string   `json:"topic"`
	Subtopics             []string `json:"subtopics"`
	TeacherID             string   `json:"teacherId"`
	ProficiencyThreshold  int      `json:"proficiencyThreshold,omitempty"`
	MinimumQuestions      int      `json:"minimumQuestions,omitempty"`
}

// Session is the normalized identity snapshot returned by start and resume.
type Session struct {
	SessionID       string        `json:"sessionId"`
	Status          SessionStatus `json:"status"`
	CurrentSubtopic string        `json:"currentSubtopic"`
	Message         string        `json:"message,omitempty"`
}

// Question is the normalized question payload. The wire form may arrive flat
// or with the prompt nested under a "question" sub-object; the adapter always
// produces this flat shape.
type Question struct {
	QuestionID      string       `json:"questionId"`
	Prompt          string       `json:"question"`
	Options         []string     `json:"options,omitempty"`
	Difficulty      Difficulty   `json:"difficulty"`
	Kind            QuestionKind `json:"questionType"`
	RuntimeMs       int          `json:"runtime"`
	ImageURL        string       `json:"imageUrl,omitempty"`
	CurrentSubtopic string       `json:"currentSubtopic"`
	SubtopicIndex   int          `json:"subtopicIndex"`
	QuestionIndex   int          `json:"questionIndex"`
	TotalSubtopics  int          `json:"totalSubtopics"`
}

// StudentResponse is one student's answer to the current question.
type StudentResponse struct {
	StudentID      string `json:"studentId"`
	IsCorrect      bool   `json:"isCorrect"`
	ResponseTimeMs int    `json:"responseTime"`
	SelectedAnswer string `json:"selectedAnswer"`
}

// SubmitInput carries a batch of student responses for one question.
type SubmitInput struct {
	QuestionID string            `json:"questionId"`
	Responses  []StudentResponse `json:"responses"`
}

// Distribution is the three-bucket spread of student performance.
type Distribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// ClassConsistency is the agreement level across the class. AverageScore is
// always 0-100 after normalization.
type ClassConsistency struct {
	AverageScore float64      `json:"averageScore"`
	Distribution Distribution `json:"distribution"`
}

// SubmitResult is the normalized outcome of a response submission.
// All score fields are 0-100.
type SubmitResult struct {
	Status              SessionStatus    `json:"status"`
	ClassConsistency    ClassConsistency `json:"classConsistency"`
	MasteryPercentage   float64          `json:"masteryPercentage"`
	QuestionConsistency float64          `json:"questionConsistency"`
	Outcome             string           `json:"outcome"`
	NextAction          NextAction       `json:"nextAction"`
	Message             string           `json:"message,omitempty"`
}

// Explanation is the transient answer explanation shown to the class.
type Explanation struct {
	Explanation   string     `json:"explanation"`
	CorrectAnswer string     `json:"correctAnswer"`
	NextAction    NextAction `json:"nextAction"`
	QuestionID    string     `json:"questionId"`
}

// SubtopicOutcome is the per-subtopic progress record. Order is
// server-assigned and preserved.
type SubtopicOutcome struct {
	Subtopic       string  `json:"subtopic"`
	Status         string  `json:"status"` // passed, failed, in_progress, pending
	QuestionsAsked int     `json:"questionsAsked"`
	AverageScore   float64 `json:"averageScore"`
}

// StatusSnapshot is the normalized status poll result.
type StatusSnapshot struct {
	SessionID         string            `json:"sessionId"`
	Status            SessionStatus     `json:"status"`
	CurrentSubtopic   string            `json:"currentSubtopic"`
	ClassConsistency  ClassConsistency  `json:"classConsistency"`
	MasteryPercentage float64           `json:"masteryPercentage"`
	SubtopicOutcomes  []SubtopicOutcome `json:"subtopicOutcomes"`
	QuestionsAsked    int               `json:"questionsAsked"`
	InterventionCount int               `json:"interventionCount"`
}

// StudentStats is one student's aggregate performance over the session.
type StudentStats struct {
	StudentID           string          `json:"studentId"`
	Name                string          `json:"name,omitempty"`
	CorrectAnswers      int             `json:"correctAnswers"`
	TotalQuestions      int             `json:"totalQuestions"`
	AverageResponseTime float64         `json:"averageResponseTime"`
	Performance         PerformanceBand `json:"performance"`
}

// SessionMetadata describes the session an analytics report covers.
type SessionMetadata struct {
	Subject    string `json:"subject"`
	Chapter    string `json:"chapter"`
	Topic      string `json:"topic"`
	ClassLevel int    `json:"classLevel"`
	ClassName  string `json:"className"`
	StartedAt  string `json:"startedAt"`
	EndedAt    string `json:"endedAt,omitempty"`
	DurationMs int    `json:"duration,omitempty"`
}

// AnalyticsSummary is the derived roll-up at the top of the report.
type AnalyticsSummary struct {
	TotalQuestions int     `json:"totalQuestions"`
	TotalStudents  int     `json:"totalStudents"`
	AverageScore   float64 `json:"averageScore"`
	PassRate       float64 `json:"passRate"`
}

// Analytics is the full end-of-session report.
type Analytics struct {
	SessionID         string            `json:"sessionId"`
	Metadata          SessionMetadata   `json:"metadata"`
	StudentStats      []StudentStats    `json:"studentStats"`
	ClassConsistency  ClassConsistency  `json:"classConsistency"`
	MasteryPercentage float64           `json:"masteryPercentage"`
	SubtopicOutcomes  []SubtopicOutcome `json:"subtopicOutcomes"`
	AIInsights        []string          `json:"aiInsights,omitempty"`
	Summary           AnalyticsSummary  `json:"summary"`
}

// StopResult is the outcome of an explicit stop request.
type StopResult struct {
	SessionID  string        `json:"sessionId"`
	Status     SessionStatus `json:"status"`
	StopReason string        `json:"stopReason"`
	Analytics  *Analytics    `json:"analytics"`
}

// SuggestSubtopicsInput asks the auxiliary service to break a topic down.
type SuggestSubtopicsInput struct {
	Board      string `json:"board"`
	ClassLevel int    `json:"classLevel"`
	Subject    string `json:"subject"`
	Chapter    string `json:"chapter"`
	Topic      string `json:"topic"`
}

// SubtopicSuggestion is the auxiliary service's topic breakdown.
type SubtopicSuggestion struct {
	MainTopic string   `json:"mainTopic"`
	Subtopics []string `json:"subtopics"`
}
