package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:    srv.URL + "/v1/agent",
		AuxBaseURL: srv.URL + "/v1/ai-quiz",
		Timeout:    5 * time.Second,
	})
}

func TestStartSession_EnvelopeUnwrap(t *testing.T) {
	var gotPath string
	var gotBody StartSessionInput

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"sessionId":"sess-1","status":"initialized","currentSubtopic":"Simple Linear Equations"}}`))
	})

	session, err := c.StartSession(context.Background(), StartSessionInput{
		SchoolID: "school-1",
		Subject:  "Mathematics",
		Topic:    "Linear Equations",
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/agent/start", gotPath)
	assert.Equal(t, "school-1", gotBody.SchoolID)
	assert.Equal(t, "sess-1", session.SessionID)
	assert.Equal(t, StatusInitialized, session.Status)
}

func TestStartSession_FlatBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"sessionId":"sess-2","status":"running","currentSubtopic":"x"}`))
	})

	session, err := c.StartSession(context.Background(), StartSessionInput{})
	require.NoError(t, err)
	assert.Equal(t, "sess-2", session.SessionID)
}

func TestServerError_MessageExtracted(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"subtopics list is empty"}`))
	})

	_, err := c.StartSession(context.Background(), StartSessionInput{})
	require.Error(t, err)

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusBadRequest, remoteErr.StatusCode)
	assert.Equal(t, "subtopics list is empty", remoteErr.Message)
}

func TestServerError_NoMessageBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := c.Status(context.Background(), "sess-1")
	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Contains(t, remoteErr.Message, "500")
}

func TestTransportError(t *testing.T) {
	c := NewClient(Config{
		BaseURL: "http://127.0.0.1:1", // nothing listens here
		Timeout: 200 * time.Millisecond,
	})

	_, err := c.NextQuestion(context.Background(), "sess-1")
	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Zero(t, remoteErr.StatusCode)
	assert.NotEmpty(t, remoteErr.Message)
}

func TestNextQuestion_NestedShape(t *testing.T) {
	var gotMethod, gotPath string

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data":{
			"questionId":"q1",
			"question":{"question":"Solve 2x = 8","options":["2","4","6","8"]},
			"difficulty":"easy",
			"questionType":"initial",
			"runtime":60000,
			"currentSubtopic":"Simple Linear Equations"
		}}`))
	})

	q, err := c.NextQuestion(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v1/agent/sess-1/next-question", gotPath)
	assert.Equal(t, "Solve 2x = 8", q.Prompt)
	assert.Equal(t, 3, q.TotalSubtopics, "missing totalSubtopics defaults to 3")
}

func TestNextQuestion_SchemaRejectsEmptyPrompt(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"questionId":"q1","question":""}`))
	})

	_, err := c.NextQuestion(context.Background(), "sess-1")
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
}

func TestSubmitResponses_NormalizesMetrics(t *testing.T) {
	var gotInput SubmitInput

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotInput))
		_, _ = w.Write([]byte(`{
			"status":"evaluating",
			"classConsistency":{"averageScore":0.64,"distribution":{"high":3,"medium":4,"low":3}},
			"masteryPercentage":0.58,
			"questionConsistency":0.64,
			"outcome":"weak",
			"nextAction":"show_explanation",
			"message":"Consistency below threshold"
		}`))
	})

	res, err := c.SubmitResponses(context.Background(), "sess-1", SubmitInput{
		QuestionID: "q1",
		Responses:  []StudentResponse{{StudentID: "s1", IsCorrect: true, ResponseTimeMs: 12000, SelectedAnswer: "4"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "q1", gotInput.QuestionID)
	assert.Equal(t, float64(64), res.QuestionConsistency)
	assert.Equal(t, float64(58), res.MasteryPercentage)
	assert.Equal(t, float64(64), res.ClassConsistency.AverageScore)
	assert.Equal(t, ActionShowExplanation, res.NextAction)
}

func TestAnalytics_MapStatsNormalized(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"data":{
			"sessionId":"sess-1",
			"metadata":{"subject":"Mathematics","classLevel":10,"className":"10-A","startedAt":"2026-03-02T09:00:00Z"},
			"studentStats":{
				"s1":{"correct":8,"answered":10,"name":"A","performance":"high","responseTimes":{"q1":9000,"q2":11000}},
				"s2":{"correct":3,"answered":10,"name":"B"}
			},
			"classConsistency":{"averageScore":0.55,"distribution":{"high":1,"medium":0,"low":1}},
			"masteryPercentage":55,
			"subtopicOutcomes":[]
		}}`))
	})

	analytics, err := c.Analytics(context.Background(), "sess-1")
	require.NoError(t, err)

	require.Len(t, analytics.StudentStats, 2)
	assert.Equal(t, 2, analytics.Summary.TotalStudents)
	assert.Equal(t, float64(55), analytics.Summary.AverageScore)
	assert.Equal(t, float64(50), analytics.Summary.PassRate)
}

func TestStopSession(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/agent/sess-1/stop", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"sessionId":"sess-1",
			"status":"stopped",
			"stopReason":"teacher_stopped",
			"analytics":{"sessionId":"sess-1","metadata":{},"studentStats":[],"classConsistency":{"averageScore":0,"distribution":{"high":0,"medium":0,"low":0}},"masteryPercentage":20,"subtopicOutcomes":[]}
		}`))
	})

	res, err := c.StopSession(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StatusStopped, res.Status)
	require.NotNil(t, res.Analytics)
	assert.Equal(t, float64(20), res.Analytics.MasteryPercentage)
}

func TestSuggestSubtopics_AuxBase(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/ai-quiz/generate-subtopics", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"mainTopic":"Linear Equations","subtopics":["Simple Linear Equations","Word Problems"]}}`))
	})

	suggestion, err := c.SuggestSubtopics(context.Background(), SuggestSubtopicsInput{
		Board: "CBSE", ClassLevel: 10, Subject: "Mathematics", Chapter: "Algebra", Topic: "Linear Equations",
	})
	require.NoError(t, err)
	assert.Equal(t, "Linear Equations", suggestion.MainTopic)
	assert.Len(t, suggestion.Subtopics, 2)
}
