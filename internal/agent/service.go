package agent

import "context"

// Service is the client-side view of the remote quiz service. Screens and
// the flow controller depend on this interface; the HTTP client, the logging
// decorator, and the test mock all implement it.
type Service interface {
	StartSession(ctx context.Context, input StartSessionInput) (*Session, error)
	NextQuestion(ctx context.Context, sessionID string) (*Question, error)
	SubmitResponses(ctx context.Context, sessionID string, input SubmitInput) (*SubmitResult, error)
	Explanation(ctx context.Context, sessionID string) (*Explanation, error)
	Resume(ctx context.Context, sessionID string) (*Session, error)
	Status(ctx context.Context, sessionID string) (*StatusSnapshot, error)
	Analytics(ctx context.Context, sessionID string) (*Analytics, error)
	StopSession(ctx context.Context, sessionID string) (*StopResult, error)
	SuggestSubtopics(ctx context.Context, input SuggestSubtopicsInput) (*SubtopicSuggestion, error)
}
