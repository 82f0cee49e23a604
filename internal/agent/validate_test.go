package agent

import (
	"strings"
	"testing"
)

func validQuestion() *Question {
	return &Question{
		QuestionID:      "q-1",
		Prompt:          "Solve 2x + 3 = 7",
		Options:         []string{"x = 2", "x = 3"},
		Difficulty:      DifficultyEasy,
		Kind:            KindInitial,
		RuntimeMs:       60000,
		CurrentSubtopic: "Simple Linear Equations",
		TotalSubtopics:  3,
	}
}

func TestValidateQuestion(t *testing.T) {
	if err := validateQuestion(validQuestion()); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}

	t.Run("missing id", func(t *testing.T) {
		q := validQuestion()
		q.QuestionID = ""
		if err := validateQuestion(q); err == nil {
			t.Error("expected rejection for empty questionId")
		}
	})

	t.Run("missing prompt", func(t *testing.T) {
		q := validQuestion()
		q.Prompt = ""
		if err := validateQuestion(q); err == nil {
			t.Error("expected rejection for empty question text")
		}
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		q := validQuestion()
		q.Difficulty = "impossible"
		err := validateQuestion(q)
		if err == nil {
			t.Fatal("expected rejection for unknown difficulty")
		}
		if !strings.Contains(err.Error(), "question") {
			t.Errorf("error should name the schema: %v", err)
		}
	})

	t.Run("negative runtime", func(t *testing.T) {
		q := validQuestion()
		q.RuntimeMs = -1
		if err := validateQuestion(q); err == nil {
			t.Error("expected rejection for negative runtime")
		}
	})
}

func TestValidateAnalytics(t *testing.T) {
	valid := &Analytics{
		SessionID: "sess-1",
		StudentStats: []StudentStats{
			{StudentID: "s1", CorrectAnswers: 3, TotalQuestions: 5, AverageResponseTime: 12000, Performance: BandMedium},
		},
		MasteryPercentage: 64,
		Summary:           AnalyticsSummary{TotalStudents: 1, TotalQuestions: 5, AverageScore: 60, PassRate: 100},
	}
	if err := validateAnalytics(valid); err != nil {
		t.Fatalf("valid analytics rejected: %v", err)
	}

	t.Run("mastery out of range", func(t *testing.T) {
		a := *valid
		a.MasteryPercentage = 140
		if err := validateAnalytics(&a); err == nil {
			t.Error("expected rejection for mastery above 100")
		}
	})

	t.Run("student without id", func(t *testing.T) {
		a := *valid
		a.StudentStats = []StudentStats{{CorrectAnswers: 1}}
		if err := validateAnalytics(&a); err == nil {
			t.Error("expected rejection for missing studentId")
		}
	})
}

func TestSchemaCacheReuse(t *testing.T) {
	// Two validations of the same schema must not recompile it.
	if err := validateQuestion(validQuestion()); err != nil {
		t.Fatal(err)
	}
	if _, ok := schemaCache.Load(questionSchema.Name); !ok {
		t.Fatal("compiled schema not cached")
	}
	if err := validateQuestion(validQuestion()); err != nil {
		t.Fatal(err)
	}
}
