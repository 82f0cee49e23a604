package agent

import (
	"context"
	"sync"
)

// MockCall records one invocation against the MockService.
type MockCall struct {
	Operation string
	SessionID string
	Input     any
}

// MockResult is one canned reply. Exactly one payload field should be set;
// Err wins when non-nil.
type MockResult struct {
	Session    *Session
	Question   *Question
	Submit     *SubmitResult
	Explain    *Explanation
	Snapshot   *StatusSnapshot
	Analytics  *Analytics
	Stop       *StopResult
	Suggestion *SubtopicSuggestion
	Err        error
}

// MockService is a deterministic Service for tests and offline demos.
// It replies with canned results in FIFO order and records every call.
type MockService struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []MockCall
}

var _ Service = (*MockService)(nil)

// NewMockService creates a MockService with the given canned results.
func NewMockService(results ...MockResult) *MockService {
	return &MockService{results: results}
}

// AddResult appends a canned result to the queue.
func (m *MockService) AddResult(r MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
}

func (m *MockService) next(op, sessionID string, input any) (MockResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Operation: op, SessionID: sessionID, Input: input})

	if len(m.results) == 0 {
		return MockResult{}, &RemoteError{Operation: op, Message: "mock: no canned result"}
	}
	r := m.results[0]
	m.results = m.results[1:]
	if r.Err != nil {
		return MockResult{}, r.Err
	}
	return r, nil
}

// CallsFor returns the recorded calls matching the given operation.
func (m *MockService) CallsFor(op string) []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var calls []MockCall
	for _, c := range m.Calls {
		if c.Operation == op {
			calls = append(calls, c)
		}
	}
	return calls
}

func (m *MockService) StartSession(_ context.Context, input StartSessionInput) (*Session, error) {
	r, err := m.next("start", "", input)
	if err != nil {
		return nil, err
	}
	return r.Session, nil
}

func (m *MockService) NextQuestion(_ context.Context, sessionID string) (*Question, error) {
	r, err := m.next("next-question", sessionID, nil)
	if err != nil {
		return nil, err
	}
	return r.Question, nil
}

func (m *MockService) SubmitResponses(_ context.Context, sessionID string, input SubmitInput) (*SubmitResult, error) {
	r, err := m.next("submit-responses", sessionID, input)
	if err != nil {
		return nil, err
	}
	return r.Submit, nil
}

func (m *MockService) Explanation(_ context.Context, sessionID string) (*Explanation, error) {
	r, err := m.next("explanation", sessionID, nil)
	if err != nil {
		return nil, err
	}
	return r.Explain, nil
}

func (m *MockService) Resume(_ context.Context, sessionID string) (*Session, error) {
	r, err := m.next("resume", sessionID, nil)
	if err != nil {
		return nil, err
	}
	return r.Session, nil
}

func (m *MockService) Status(_ context.Context, sessionID string) (*StatusSnapshot, error) {
	r, err := m.next("status", sessionID, nil)
	if err != nil {
		return nil, err
	}
	return r.Snapshot, nil
}

func (m *MockService) Analytics(_ context.Context, sessionID string) (*Analytics, error) {
	r, err := m.next("analytics", sessionID, nil)
	if err != nil {
		return nil, err
	}
	return r.Analytics, nil
}

func (m *MockService) StopSession(_ context.Context, sessionID string) (*StopResult, error) {
	r, err := m.next("stop", sessionID, nil)
	if err != nil {
		return nil, err
	}
	return r.Stop, nil
}

func (m *MockService) SuggestSubtopics(_ context.Context, input SuggestSubtopicsInput) (*SubtopicSuggestion, error) {
	r, err := m.next("generate-subtopics", "", input)
	if err != nil {
		return nil, err
	}
	return r.Suggestion, nil
}
