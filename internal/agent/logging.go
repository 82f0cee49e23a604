package agent

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/classpulse/classpulse/internal/store"
)

// LoggingService is a decorator that records every quiz-service call as an
// event in the local journal. Logging failures never fail the request.
type LoggingService struct {
	inner Service
	repo  store.EventRepo
}

// WithLogging wraps a Service with event logging.
func WithLogging(s Service, repo store.EventRepo) Service {
	return &LoggingService{inner: s, repo: repo}
}

var _ Service = (*LoggingService)(nil)

func (l *LoggingService) record(ctx context.Context, op, sessionID string, start time.Time, err error) {
	data := store.APIRequestEventData{
		Operation: op,
		SessionID: sessionID,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	if logErr := l.repo.AppendAPIRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log API request event: %v\n", logErr)
	}
}

func (l *LoggingService) StartSession(ctx context.Context, input StartSessionInput) (*Session, error) {
	start := time.Now()
	session, err := l.inner.StartSession(ctx, input)
	sessionID := ""
	if session != nil {
		sessionID = session.SessionID
	}
	l.record(ctx, "start", sessionID, start, err)
	return session, err
}

func (l *LoggingService) NextQuestion(ctx context.Context, sessionID string) (*Question, error) {
	start := time.Now()
	q, err := l.inner.NextQuestion(ctx, sessionID)
	l.record(ctx, "next-question", sessionID, start, err)
	return q, err
}

func (l *LoggingService) SubmitResponses(ctx context.Context, sessionID string, input SubmitInput) (*SubmitResult, error) {
	start := time.Now()
	res, err := l.inner.SubmitResponses(ctx, sessionID, input)
	l.record(ctx, "submit-responses", sessionID, start, err)
	return res, err
}

func (l *LoggingService) Explanation(ctx context.Context, sessionID string) (*Explanation, error) {
	start := time.Now()
	exp, err := l.inner.Explanation(ctx, sessionID)
	l.record(ctx, "explanation", sessionID, start, err)
	return exp, err
}

func (l *LoggingService) Resume(ctx context.Context, sessionID string) (*Session, error) {
	start := time.Now()
	session, err := l.inner.Resume(ctx, sessionID)
	l.record(ctx, "resume", sessionID, start, err)
	return session, err
}

func (l *LoggingService) Status(ctx context.Context, sessionID string) (*StatusSnapshot, error) {
	start := time.Now()
	snap, err := l.inner.Status(ctx, sessionID)
	l.record(ctx, "status", sessionID, start, err)
	return snap, err
}

func (l *LoggingService) Analytics(ctx context.Context, sessionID string) (*Analytics, error) {
	start := time.Now()
	analytics, err := l.inner.Analytics(ctx, sessionID)
	l.record(ctx, "analytics", sessionID, start, err)
	return analytics, err
}

func (l *LoggingService) StopSession(ctx context.Context, sessionID string) (*StopResult, error) {
	start := time.Now()
	res, err := l.inner.StopSession(ctx, sessionID)
	l.record(ctx, "stop", sessionID, start, err)
	return res, err
}

func (l *LoggingService) SuggestSubtopics(ctx context.Context, input SuggestSubtopicsInput) (*SubtopicSuggestion, error) {
	start := time.Now()
	suggestion, err := l.inner.SuggestSubtopics(ctx, input)
	l.record(ctx, "generate-subtopics", "", start, err)
	return suggestion, err
}
