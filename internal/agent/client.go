package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Client is the HTTP implementation of Service.
type Client struct {
	cfg    Config
	client *http.Client
}

var _ Service = (*Client)(nil)

// NewClient creates a Client for the configured endpoints.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.AuxBaseURL == "" {
		cfg.AuxBaseURL = defaultAuxURL
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// do issues one request and returns the unwrapped success payload.
// Failures always surface as *RemoteError with a human-readable message:
// the server's message body when there is one, the transport error otherwise.
func (c *Client) do(ctx context.Context, op, method, base, path string, body any) (json.RawMessage, error) {
	u := strings.TrimRight(base, "/") + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &RemoteError{Operation: op, Message: err.Error(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteError{Operation: op, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody, resp.StatusCode),
		}
	}

	return unwrapEnvelope(respBody), nil
}

// errorMessage extracts the server's message field from an error body.
func errorMessage(body []byte, status int) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}

func (c *Client) StartSession(ctx context.Context, input StartSessionInput) (*Session, error) {
	payload, err := c.do(ctx, "start", http.MethodPost, c.cfg.BaseURL, "/start", input)
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, &DecodeError{Operation: "start", Body: payload, Err: err}
	}
	return &session, nil
}

func (c *Client) NextQuestion(ctx context.Context, sessionID string) (*Question, error) {
	path := "/" + url.PathEscape(sessionID) + "/next-question"
	payload, err := c.do(ctx, "next-question", http.MethodPost, c.cfg.BaseURL, path, nil)
	if err != nil {
		return nil, err
	}
	q, err := normalizeQuestion(payload)
	if err != nil {
		return nil, &DecodeError{Operation: "next-question", Body: payload, Err: err}
	}
	if err := validateQuestion(q); err != nil {
		return nil, &DecodeError{Operation: "next-question", Body: payload, Err: err}
	}
	return q, nil
}

func (c *Client) SubmitResponses(ctx context.Context, sessionID string, input SubmitInput) (*SubmitResult, error) {
	path := "/" + url.PathEscape(sessionID) + "/submit-responses"
	payload, err := c.do(ctx, "submit-responses", http.MethodPost, c.cfg.BaseURL, path, input)
	if err != nil {
		return nil, err
	}
	res, err := normalizeSubmitResult(payload)
	if err != nil {
		return nil, &DecodeError{Operation: "submit-responses", Body: payload, Err: err}
	}
	return res, nil
}

func (c *Client) Explanation(ctx context.Context, sessionID string) (*Explanation, error) {
	path := "/" + url.PathEscape(sessionID) + "/explanation"
	payload, err := c.do(ctx, "explanation", http.MethodGet, c.cfg.BaseURL, path, nil)
	if err != nil {
		return nil, err
	}
	var exp Explanation
	if err := json.Unmarshal(payload, &exp); err != nil {
		return nil, &DecodeError{Operation: "explanation", Body: payload, Err: err}
	}
	return &exp, nil
}

func (c *Client) Resume(ctx context.Context, sessionID string) (*Session, error) {
	path := "/" + url.PathEscape(sessionID) + "/resume"
	payload, err := c.do(ctx, "resume", http.MethodPost, c.cfg.BaseURL, path, nil)
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, &DecodeError{Operation: "resume", Body: payload, Err: err}
	}
	return &session, nil
}

func (c *Client) Status(ctx context.Context, sessionID string) (*StatusSnapshot, error) {
	path := "/" + url.PathEscape(sessionID) + "/status"
	payload, err := c.do(ctx, "status", http.MethodGet, c.cfg.BaseURL, path, nil)
	if err != nil {
		return nil, err
	}
	snap, err := normalizeStatus(payload)
	if err != nil {
		return nil, &DecodeError{Operation: "status", Body: payload, Err: err}
	}
	return snap, nil
}

func (c *Client) Analytics(ctx context.Context, sessionID string) (*Analytics, error) {
	path := "/" + url.PathEscape(sessionID) + "/analytics"
	payload, err := c.do(ctx, "analytics", http.MethodGet, c.cfg.BaseURL, path, nil)
	if err != nil {
		return nil, err
	}
	analytics, err := normalizeAnalytics(payload)
	if err != nil {
		return nil, &DecodeError{Operation: "analytics", Body: payload, Err: err}
	}
	if err := validateAnalytics(analytics); err != nil {
		return nil, &DecodeError{Operation: "analytics", Body: payload, Err: err}
	}
	return analytics, nil
}

func (c *Client) StopSession(ctx context.Context, sessionID string) (*StopResult, error) {
	path := "/" + url.PathEscape(sessionID) + "/stop"
	payload, err := c.do(ctx, "stop", http.MethodPost, c.cfg.BaseURL, path, nil)
	if err != nil {
		return nil, err
	}
	res, err := normalizeStopResult(payload)
	if err != nil {
		return nil, &DecodeError{Operation: "stop", Body: payload, Err: err}
	}
	return res, nil
}

func (c *Client) SuggestSubtopics(ctx context.Context, input SuggestSubtopicsInput) (*SubtopicSuggestion, error) {
	payload, err := c.do(ctx, "generate-subtopics", http.MethodPost, c.cfg.AuxBaseURL, "/generate-subtopics", input)
	if err != nil {
		return nil, err
	}
	var suggestion SubtopicSuggestion
	if err := json.Unmarshal(payload, &suggestion); err != nil {
		return nil, &DecodeError{Operation: "generate-subtopics", Body: payload, Err: err}
	}
	return &suggestion, nil
}
