package agent

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNormalizeScore(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"fraction", 0.85, 85},
		{"zero", 0, 0},
		{"exactly one", 1, 100},
		{"already percentage", 85, 85},
		{"just above one", 1.5, 1.5},
		{"hundred", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeScore(tt.in); got != tt.want {
				t.Errorf("NormalizeScore(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeScore_IdempotentAbovePercentRange(t *testing.T) {
	for _, v := range []float64{1.01, 2, 40, 73.5, 100} {
		once := NormalizeScore(v)
		twice := NormalizeScore(once)
		if once != twice {
			t.Errorf("NormalizeScore not idempotent at %v: %v then %v", v, once, twice)
		}
	}
}

func TestUnwrapEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"wrapped", `{"data":{"sessionId":"s1"}}`, `{"sessionId":"s1"}`},
		{"flat", `{"sessionId":"s1"}`, `{"sessionId":"s1"}`},
		{"null data key", `{"data":null,"sessionId":"s1"}`, `{"data":null,"sessionId":"s1"}`},
		{"array body", `[1,2,3]`, `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unwrapEnvelope([]byte(tt.body))
			if string(got) != tt.want {
				t.Errorf("unwrapEnvelope(%s) = %s, want %s", tt.body, got, tt.want)
			}
		})
	}
}

func TestNormalizeQuestion_Flat(t *testing.T) {
	payload := `{
		"questionId": "q1",
		"question": "What is 2x + 3 = 7?",
		"options": ["x=1", "x=2", "x=3", "x=4"],
		"difficulty": "easy",
		"questionType": "initial",
		"runtime": 60000,
		"currentSubtopic": "Simple Linear Equations",
		"subtopicIndex": 1,
		"totalSubtopics": 5
	}`

	q, err := normalizeQuestion([]byte(payload))
	if err != nil {
		t.Fatalf("normalizeQuestion: %v", err)
	}
	if q.Prompt != "What is 2x + 3 = 7?" {
		t.Errorf("Prompt = %q", q.Prompt)
	}
	if len(q.Options) != 4 {
		t.Errorf("len(Options) = %d, want 4", len(q.Options))
	}
	if q.SubtopicIndex != 1 || q.TotalSubtopics != 5 {
		t.Errorf("indexes = %d/%d, want 1/5", q.SubtopicIndex, q.TotalSubtopics)
	}
}

func TestNormalizeQuestion_Nested(t *testing.T) {
	payload := `{
		"questionId": "q2",
		"question": {
			"question": "Solve for y",
			"options": ["1", "2"],
			"imageUrl": "https://cdn.example/q2.png"
		},
		"difficulty": "hard",
		"questionType": "verification",
		"runtime": 45000,
		"currentSubtopic": "Word Problems"
	}`

	q, err := normalizeQuestion([]byte(payload))
	if err != nil {
		t.Fatalf("normalizeQuestion: %v", err)
	}
	if q.Prompt != "Solve for y" {
		t.Errorf("Prompt = %q", q.Prompt)
	}
	if q.ImageURL != "https://cdn.example/q2.png" {
		t.Errorf("ImageURL = %q", q.ImageURL)
	}
	if len(q.Options) != 2 {
		t.Errorf("len(Options) = %d, want 2", len(q.Options))
	}
}

func TestNormalizeQuestion_Defaults(t *testing.T) {
	payload := `{"questionId": "q3", "question": "A prompt"}`

	q, err := normalizeQuestion([]byte(payload))
	if err != nil {
		t.Fatalf("normalizeQuestion: %v", err)
	}
	if q.TotalSubtopics != 3 {
		t.Errorf("TotalSubtopics = %d, want default 3", q.TotalSubtopics)
	}
	if q.SubtopicIndex != 0 || q.QuestionIndex != 0 {
		t.Errorf("indexes = %d/%d, want 0/0", q.SubtopicIndex, q.QuestionIndex)
	}
}

func TestNormalizeSubmitResult_FractionalScores(t *testing.T) {
	payload := `{
		"status": "running",
		"classConsistency": {"averageScore": 0.72, "distribution": {"high": 4, "medium": 3, "low": 3}},
		"masteryPercentage": 0.65,
		"questionConsistency": 72,
		"outcome": "pass",
		"nextAction": "next_subtopic"
	}`

	res, err := normalizeSubmitResult([]byte(payload))
	if err != nil {
		t.Fatalf("normalizeSubmitResult: %v", err)
	}
	if res.ClassConsistency.AverageScore != 72 {
		t.Errorf("class average = %v, want 72", res.ClassConsistency.AverageScore)
	}
	if res.MasteryPercentage != 65 {
		t.Errorf("mastery = %v, want 65", res.MasteryPercentage)
	}
	if res.QuestionConsistency != 72 {
		t.Errorf("question consistency = %v, want 72 (pass-through)", res.QuestionConsistency)
	}
	if res.NextAction != ActionNextSubtopic {
		t.Errorf("nextAction = %q", res.NextAction)
	}
}

func TestNormalizeStudentStats_Mapping(t *testing.T) {
	raw := json.RawMessage(`{
		"s1": {"correct": 3, "answered": 4, "name": "A", "responseTimes": {"q1": 1000, "q2": 3000}}
	}`)

	stats, err := normalizeStudentStats(raw)
	if err != nil {
		t.Fatalf("normalizeStudentStats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("len(stats) = %d, want 1", len(stats))
	}

	s := stats[0]
	if s.StudentID != "s1" {
		t.Errorf("StudentID = %q, want s1", s.StudentID)
	}
	if s.Name != "A" {
		t.Errorf("Name = %q, want A", s.Name)
	}
	if s.CorrectAnswers != 3 || s.TotalQuestions != 4 {
		t.Errorf("counts = %d/%d, want 3/4", s.CorrectAnswers, s.TotalQuestions)
	}
	if s.AverageResponseTime != 2000 {
		t.Errorf("AverageResponseTime = %v, want 2000", s.AverageResponseTime)
	}
	if s.Performance != BandLow {
		t.Errorf("Performance = %q, want low default", s.Performance)
	}
}

func TestNormalizeStudentStats_MapVariants(t *testing.T) {
	raw := json.RawMessage(`{
		"s1": {"correct": 5, "answered": 5, "performance": "HIGH"},
		"s2": {"correct": 0, "answered": 0, "responseTimes": {}}
	}`)

	stats, err := normalizeStudentStats(raw)
	if err != nil {
		t.Fatalf("normalizeStudentStats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}

	byID := map[string]StudentStats{}
	for _, s := range stats {
		byID[s.StudentID] = s
	}
	if byID["s1"].Performance != BandHigh {
		t.Errorf("performance = %q, want lowercased high", byID["s1"].Performance)
	}
	if byID["s2"].AverageResponseTime != 0 {
		t.Errorf("empty responseTimes should average to 0, got %v", byID["s2"].AverageResponseTime)
	}
	if byID["s2"].Performance != BandLow {
		t.Errorf("missing performance should default to low, got %q", byID["s2"].Performance)
	}
}

func TestNormalizeStudentStats_ArrayPassThrough(t *testing.T) {
	raw := json.RawMessage(`[
		{"studentId": "s9", "name": "Z", "correctAnswers": 7, "totalQuestions": 10, "averageResponseTime": 1500, "performance": "medium"}
	]`)

	stats, err := normalizeStudentStats(raw)
	if err != nil {
		t.Fatalf("normalizeStudentStats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("len(stats) = %d, want 1", len(stats))
	}
	if stats[0].StudentID != "s9" || stats[0].CorrectAnswers != 7 {
		t.Errorf("array form must pass through unchanged, got %+v", stats[0])
	}
}

func TestNormalizeInsights_ObjectForm(t *testing.T) {
	raw := json.RawMessage(`{
		"summary": "The class grasped the basics.",
		"recommendations": ["Revisit word problems", "Add practice on fractions"],
		"strugglingConcepts": ["transposition", "negative numbers"]
	}`)

	insights, err := normalizeInsights(raw)
	if err != nil {
		t.Fatalf("normalizeInsights: %v", err)
	}

	want := []string{
		"The class grasped the basics.",
		"Revisit word problems",
		"Add practice on fractions",
		"Struggling concepts: transposition, negative numbers",
	}
	if len(insights) != len(want) {
		t.Fatalf("len = %d, want %d: %v", len(insights), len(want), insights)
	}
	for i := range want {
		if insights[i] != want[i] {
			t.Errorf("insights[%d] = %q, want %q", i, insights[i], want[i])
		}
	}
}

func TestNormalizeInsights_PartialObject(t *testing.T) {
	raw := json.RawMessage(`{"recommendations": ["One thing"]}`)

	insights, err := normalizeInsights(raw)
	if err != nil {
		t.Fatalf("normalizeInsights: %v", err)
	}
	if len(insights) != 1 || insights[0] != "One thing" {
		t.Errorf("insights = %v", insights)
	}
}

func TestNormalizeInsights_ArrayPassThrough(t *testing.T) {
	raw := json.RawMessage(`["a", "b"]`)

	insights, err := normalizeInsights(raw)
	if err != nil {
		t.Fatalf("normalizeInsights: %v", err)
	}
	if len(insights) != 2 || insights[0] != "a" {
		t.Errorf("insights = %v", insights)
	}
}

func TestDeriveSummary(t *testing.T) {
	stats := []StudentStats{
		{StudentID: "s1", CorrectAnswers: 8, TotalQuestions: 10},
		{StudentID: "s2", CorrectAnswers: 3, TotalQuestions: 10},
	}

	sum := deriveSummary(stats, 0)
	if sum.TotalStudents != 2 {
		t.Errorf("TotalStudents = %d, want 2", sum.TotalStudents)
	}
	if sum.TotalQuestions != 10 {
		t.Errorf("TotalQuestions = %d, want 10 (max per-student)", sum.TotalQuestions)
	}
	if sum.AverageScore != 55 {
		t.Errorf("AverageScore = %v, want 55", sum.AverageScore)
	}
	if sum.PassRate != 50 {
		t.Errorf("PassRate = %v, want 50", sum.PassRate)
	}
}

func TestDeriveSummary_ServerTotalWins(t *testing.T) {
	stats := []StudentStats{{StudentID: "s1", CorrectAnswers: 1, TotalQuestions: 2}}
	sum := deriveSummary(stats, 12)
	if sum.TotalQuestions != 12 {
		t.Errorf("TotalQuestions = %d, want server-provided 12", sum.TotalQuestions)
	}
}

func TestDeriveSummary_Empty(t *testing.T) {
	sum := deriveSummary(nil, 0)
	if sum.TotalStudents != 0 || sum.TotalQuestions != 0 {
		t.Errorf("empty summary counts = %+v", sum)
	}
	if sum.AverageScore != 0 || sum.PassRate != 0 {
		t.Errorf("empty summary scores must be 0, got %+v", sum)
	}
	if math.IsNaN(sum.AverageScore) || math.IsNaN(sum.PassRate) {
		t.Error("summary must not contain NaN")
	}
}

func TestDeriveSummary_ZeroQuestionStudent(t *testing.T) {
	// A student with no answered questions neither passes nor divides by zero.
	stats := []StudentStats{
		{StudentID: "s1", CorrectAnswers: 0, TotalQuestions: 0},
		{StudentID: "s2", CorrectAnswers: 7, TotalQuestions: 10},
	}
	sum := deriveSummary(stats, 0)
	if sum.PassRate != 50 {
		t.Errorf("PassRate = %v, want 50", sum.PassRate)
	}
	if math.IsNaN(sum.AverageScore) {
		t.Error("AverageScore must not be NaN")
	}
}

func TestNormalizeAnalytics(t *testing.T) {
	payload := `{
		"sessionId": "sess-1",
		"metadata": {"subject": "Mathematics", "chapter": "Algebra", "topic": "Linear Equations", "classLevel": 10, "className": "10-A", "startedAt": "2026-03-02T09:00:00Z"},
		"studentStats": {
			"s1": {"correct": 8, "answered": 10, "name": "A", "performance": "high"},
			"s2": {"correct": 3, "answered": 10, "name": "B"}
		},
		"classConsistency": {"averageScore": 0.55, "distribution": {"high": 1, "medium": 0, "low": 1}},
		"masteryPercentage": 0.55,
		"subtopicOutcomes": [
			{"subtopic": "Simple Linear Equations", "status": "passed", "questionsAsked": 4, "averageScore": 0.8}
		],
		"aiInsights": {"summary": "Mixed results."}
	}`

	analytics, err := normalizeAnalytics([]byte(payload))
	if err != nil {
		t.Fatalf("normalizeAnalytics: %v", err)
	}

	if analytics.MasteryPercentage != 55 {
		t.Errorf("mastery = %v, want 55", analytics.MasteryPercentage)
	}
	if analytics.ClassConsistency.AverageScore != 55 {
		t.Errorf("class average = %v, want 55", analytics.ClassConsistency.AverageScore)
	}
	if analytics.SubtopicOutcomes[0].AverageScore != 80 {
		t.Errorf("subtopic average = %v, want 80", analytics.SubtopicOutcomes[0].AverageScore)
	}
	if analytics.Summary.AverageScore != 55 || analytics.Summary.PassRate != 50 {
		t.Errorf("summary = %+v, want average 55 pass 50", analytics.Summary)
	}
	if len(analytics.AIInsights) != 1 || analytics.AIInsights[0] != "Mixed results." {
		t.Errorf("insights = %v", analytics.AIInsights)
	}
}

func TestNormalizeStatus(t *testing.T) {
	payload := `{
		"sessionId": "sess-1",
		"status": "running",
		"currentSubtopic": "Word Problems",
		"classConsistency": {"averageScore": 61, "distribution": {"high": 3, "medium": 4, "low": 3}},
		"masteryPercentage": 0.4,
		"subtopicOutcomes": [
			{"subtopic": "Simple Linear Equations", "status": "passed", "questionsAsked": 3, "averageScore": 82},
			{"subtopic": "Word Problems", "status": "in_progress", "questionsAsked": 1, "averageScore": 0.5}
		],
		"questionsAsked": 4,
		"interventionCount": 1
	}`

	snap, err := normalizeStatus([]byte(payload))
	if err != nil {
		t.Fatalf("normalizeStatus: %v", err)
	}
	if snap.MasteryPercentage != 40 {
		t.Errorf("mastery = %v, want 40", snap.MasteryPercentage)
	}
	if snap.SubtopicOutcomes[0].AverageScore != 82 {
		t.Errorf("outcome[0] = %v, want 82 pass-through", snap.SubtopicOutcomes[0].AverageScore)
	}
	if snap.SubtopicOutcomes[1].AverageScore != 50 {
		t.Errorf("outcome[1] = %v, want 50", snap.SubtopicOutcomes[1].AverageScore)
	}
	if snap.InterventionCount != 1 {
		t.Errorf("interventionCount = %d", snap.InterventionCount)
	}
}

func TestNormalizeStopResult(t *testing.T) {
	payload := `{
		"sessionId": "sess-1",
		"status": "stopped",
		"stopReason": "teacher_stopped",
		"analytics": {
			"sessionId": "sess-1",
			"metadata": {"subject": "Math"},
			"studentStats": [],
			"classConsistency": {"averageScore": 0, "distribution": {"high": 0, "medium": 0, "low": 0}},
			"masteryPercentage": 30,
			"subtopicOutcomes": []
		}
	}`

	res, err := normalizeStopResult([]byte(payload))
	if err != nil {
		t.Fatalf("normalizeStopResult: %v", err)
	}
	if res.StopReason != "teacher_stopped" {
		t.Errorf("stopReason = %q", res.StopReason)
	}
	if res.Analytics == nil || res.Analytics.MasteryPercentage != 30 {
		t.Errorf("analytics = %+v", res.Analytics)
	}
}
