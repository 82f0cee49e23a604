package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// The quiz service is inconsistent about wire shapes: scores arrive as 0-1
// fractions or 0-100 percentages, collections as arrays or keyed objects,
// question payloads flat or nested. Everything in this file converts those
// variants into the single stable schema in types.go. Each polymorphic field
// gets an explicit two-branch decode rather than anything generic.

// NormalizeScore converts a raw score to the 0-100 range: values at or below
// 1 are treated as fractions and scaled, anything larger passes through.
func NormalizeScore(v float64) float64 {
	if v <= 1 {
		return v * 100
	}
	return v
}

// unwrapEnvelope peels the optional single-level {"data": ...} success
// envelope, falling back to the body itself when no data key is present.
func unwrapEnvelope(body []byte) json.RawMessage {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return body
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return body
	}
	return env.Data
}

// rawQuestion tolerates both question-payload shapes. The "question" field
// is a plain string in the flat form and a sub-object in the nested form.
type rawQuestion struct {
	QuestionID      string          `json:"questionId"`
	Question        json.RawMessage `json:"question"`
	Options         []string        `json:"options"`
	Difficulty      Difficulty      `json:"difficulty"`
	QuestionType    QuestionKind    `json:"questionType"`
	Runtime         int             `json:"runtime"`
	ImageURL        string          `json:"imageUrl"`
	CurrentSubtopic string          `json:"currentSubtopic"`
	SubtopicIndex   *int            `json:"subtopicIndex"`
	QuestionIndex   *int            `json:"questionIndex"`
	TotalSubtopics  *int            `json:"totalSubtopics"`
}

// nestedQuestion is the sub-object carried by the nested form.
type nestedQuestion struct {
	Question string   `json:"question"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	ImageURL string   `json:"imageUrl"`
}

func normalizeQuestion(payload json.RawMessage) (*Question, error) {
	var raw rawQuestion
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}

	q := &Question{
		QuestionID:      raw.QuestionID,
		Options:         raw.Options,
		Difficulty:      raw.Difficulty,
		Kind:            raw.QuestionType,
		RuntimeMs:       raw.Runtime,
		ImageURL:        raw.ImageURL,
		CurrentSubtopic: raw.CurrentSubtopic,
		TotalSubtopics:  3,
	}

	if len(raw.Question) > 0 {
		var prompt string
		if err := json.Unmarshal(raw.Question, &prompt); err == nil {
			q.Prompt = prompt
		} else {
			var nested nestedQuestion
			if err := json.Unmarshal(raw.Question, &nested); err != nil {
				return nil, fmt.Errorf("question field is neither string nor object: %w", err)
			}
			q.Prompt = nested.Question
			if q.Prompt == "" {
				q.Prompt = nested.Text
			}
			if len(nested.Options) > 0 {
				q.Options = nested.Options
			}
			if nested.ImageURL != "" {
				q.ImageURL = nested.ImageURL
			}
		}
	}

	if raw.SubtopicIndex != nil {
		q.SubtopicIndex = *raw.SubtopicIndex
	}
	if raw.QuestionIndex != nil {
		q.QuestionIndex = *raw.QuestionIndex
	}
	if raw.TotalSubtopics != nil {
		q.TotalSubtopics = *raw.TotalSubtopics
	}

	return q, nil
}

func normalizeClassConsistency(cc ClassConsistency) ClassConsistency {
	cc.AverageScore = NormalizeScore(cc.AverageScore)
	return cc
}

func normalizeSubmitResult(payload json.RawMessage) (*SubmitResult, error) {
	var res SubmitResult
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, err
	}
	res.ClassConsistency = normalizeClassConsistency(res.ClassConsistency)
	res.MasteryPercentage = NormalizeScore(res.MasteryPercentage)
	res.QuestionConsistency = NormalizeScore(res.QuestionConsistency)
	return &res, nil
}

func normalizeSubtopicOutcomes(outcomes []SubtopicOutcome) []SubtopicOutcome {
	for i := range outcomes {
		outcomes[i].AverageScore = NormalizeScore(outcomes[i].AverageScore)
	}
	return outcomes
}

func normalizeStatus(payload json.RawMessage) (*StatusSnapshot, error) {
	var snap StatusSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, err
	}
	snap.ClassConsistency = normalizeClassConsistency(snap.ClassConsistency)
	snap.MasteryPercentage = NormalizeScore(snap.MasteryPercentage)
	snap.SubtopicOutcomes = normalizeSubtopicOutcomes(snap.SubtopicOutcomes)
	return &snap, nil
}

// rawStudentStat is the keyed-object form of one student's statistics.
type rawStudentStat struct {
	Name          string             `json:"name"`
	Correct       int                `json:"correct"`
	Answered      int                `json:"answered"`
	ResponseTimes map[string]float64 `json:"responseTimes"`
	Performance   string             `json:"performance"`
}

// normalizeStudentStats accepts either the array form (passed through
// unchanged) or a studentId-keyed mapping, which is converted entry by
// entry. Map iteration order is not stable, so callers that need a fixed
// order sort afterwards; the dashboard sorts by student id.
func normalizeStudentStats(raw json.RawMessage) ([]StudentStats, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var asArray []StudentStats
	if err := json.Unmarshal(raw, &asArray); err == nil {
		return asArray, nil
	}

	var asMap map[string]rawStudentStat
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return nil, fmt.Errorf("studentStats is neither array nor object: %w", err)
	}

	stats := make([]StudentStats, 0, len(asMap))
	for id, rs := range asMap {
		var avg float64
		if len(rs.ResponseTimes) > 0 {
			var sum float64
			for _, t := range rs.ResponseTimes {
				sum += t
			}
			avg = sum / float64(len(rs.ResponseTimes))
		}

		band := PerformanceBand(strings.ToLower(rs.Performance))
		if band == "" {
			band = BandLow
		}

		stats = append(stats, StudentStats{
			StudentID:           id,
			Name:                rs.Name,
			CorrectAnswers:      rs.Correct,
			TotalQuestions:      rs.Answered,
			AverageResponseTime: avg,
			Performance:         band,
		})
	}
	return stats, nil
}

// rawInsights is the keyed-object form of the AI insights field.
type rawInsights struct {
	Summary            string   `json:"summary"`
	Recommendations    []string `json:"recommendations"`
	StrugglingConcepts []string `json:"strugglingConcepts"`
}

// normalizeInsights accepts either a plain string array (passed through) or
// the structured object form, which is flattened: summary first, then each
// recommendation, then a single synthesized struggling-concepts line.
func normalizeInsights(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var asArray []string
	if err := json.Unmarshal(raw, &asArray); err == nil {
		return asArray, nil
	}

	var obj rawInsights
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("aiInsights is neither array nor object: %w", err)
	}

	var insights []string
	if obj.Summary != "" {
		insights = append(insights, obj.Summary)
	}
	insights = append(insights, obj.Recommendations...)
	if len(obj.StrugglingConcepts) > 0 {
		insights = append(insights, "Struggling concepts: "+strings.Join(obj.StrugglingConcepts, ", "))
	}
	return insights, nil
}

// deriveSummary recomputes the report roll-up from normalized student stats.
// serverTotalQuestions, when positive, wins over the per-student maximum.
func deriveSummary(stats []StudentStats, serverTotalQuestions int) AnalyticsSummary {
	sum := AnalyticsSummary{
		TotalStudents:  len(stats),
		TotalQuestions: serverTotalQuestions,
	}

	var totalCorrect, totalAnswered, passed int
	for _, s := range stats {
		totalCorrect += s.CorrectAnswers
		totalAnswered += s.TotalQuestions
		if s.TotalQuestions > 0 && float64(s.CorrectAnswers)/float64(s.TotalQuestions) >= 0.7 {
			passed++
		}
	}

	if serverTotalQuestions <= 0 {
		maxQ := 0
		for _, s := range stats {
			if s.TotalQuestions > maxQ {
				maxQ = s.TotalQuestions
			}
		}
		sum.TotalQuestions = maxQ
	}

	if totalAnswered > 0 {
		sum.AverageScore = float64(totalCorrect) / float64(totalAnswered) * 100
	}
	if len(stats) > 0 {
		sum.PassRate = float64(passed) / float64(len(stats)) * 100
	}
	return sum
}

// rawAnalytics tolerates the polymorphic studentStats and aiInsights fields
// and an optional server-provided summary.
type rawAnalytics struct {
	SessionID         string            `json:"sessionId"`
	Metadata          SessionMetadata   `json:"metadata"`
	StudentStats      json.RawMessage   `json:"studentStats"`
	ClassConsistency  ClassConsistency  `json:"classConsistency"`
	MasteryPercentage float64           `json:"masteryPercentage"`
	SubtopicOutcomes  []SubtopicOutcome `json:"subtopicOutcomes"`
	AIInsights        json.RawMessage   `json:"aiInsights"`
	Summary           *AnalyticsSummary `json:"summary"`
}

func normalizeAnalytics(payload json.RawMessage) (*Analytics, error) {
	var raw rawAnalytics
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}

	stats, err := normalizeStudentStats(raw.StudentStats)
	if err != nil {
		return nil, err
	}
	insights, err := normalizeInsights(raw.AIInsights)
	if err != nil {
		return nil, err
	}

	serverTotal := 0
	if raw.Summary != nil {
		serverTotal = raw.Summary.TotalQuestions
	}

	return &Analytics{
		SessionID:         raw.SessionID,
		Metadata:          raw.Metadata,
		StudentStats:      stats,
		ClassConsistency:  normalizeClassConsistency(raw.ClassConsistency),
		MasteryPercentage: NormalizeScore(raw.MasteryPercentage),
		SubtopicOutcomes:  normalizeSubtopicOutcomes(raw.SubtopicOutcomes),
		AIInsights:        insights,
		Summary:           deriveSummary(stats, serverTotal),
	}, nil
}

type rawStopResult struct {
	SessionID  string          `json:"sessionId"`
	Status     SessionStatus   `json:"status"`
	StopReason string          `json:"stopReason"`
	Analytics  json.RawMessage `json:"analytics"`
}

func normalizeStopResult(payload json.RawMessage) (*StopResult, error) {
	var raw rawStopResult
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}

	res := &StopResult{
		SessionID:  raw.SessionID,
		Status:     raw.Status,
		StopReason: raw.StopReason,
	}
	if len(raw.Analytics) > 0 && !bytes.Equal(raw.Analytics, []byte("null")) {
		analytics, err := normalizeAnalytics(raw.Analytics)
		if err != nil {
			return nil, err
		}
		res.Analytics = analytics
	}
	return res, nil
}
