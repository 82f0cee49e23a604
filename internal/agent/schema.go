package agent

// Schema definitions for the stable client payloads. Normalized question and
// analytics values are validated against these before they reach the session
// store, so a service-side shape drift fails loudly in the adapter instead of
// rendering garbage three screens later.

type payloadSchema struct {
	Name       string
	Definition map[string]any
}

var questionSchema = &payloadSchema{
	Name: "question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questionId": map[string]any{"type": "string", "minLength": 1},
			"question":   map[string]any{"type": "string", "minLength": 1},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"difficulty": map[string]any{
				"enum": []any{"easy", "medium", "hard", ""},
			},
			"questionType": map[string]any{
				"enum": []any{"initial", "verification", ""},
			},
			"runtime":         map[string]any{"type": "number", "minimum": 0},
			"imageUrl":        map[string]any{"type": "string"},
			"currentSubtopic": map[string]any{"type": "string"},
			"subtopicIndex":   map[string]any{"type": "integer", "minimum": 0},
			"questionIndex":   map[string]any{"type": "integer", "minimum": 0},
			"totalSubtopics":  map[string]any{"type": "integer", "minimum": 1},
		},
		"required": []any{"questionId", "question"},
	},
}

var analyticsSchema = &payloadSchema{
	Name: "analytics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sessionId": map[string]any{"type": "string"},
			"studentStats": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"studentId":           map[string]any{"type": "string", "minLength": 1},
						"correctAnswers":      map[string]any{"type": "integer", "minimum": 0},
						"totalQuestions":      map[string]any{"type": "integer", "minimum": 0},
						"averageResponseTime": map[string]any{"type": "number", "minimum": 0},
						"performance":         map[string]any{"type": "string"},
					},
					"required": []any{"studentId"},
				},
			},
			"masteryPercentage": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			"aiInsights": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"summary": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"totalQuestions": map[string]any{"type": "integer", "minimum": 0},
					"totalStudents":  map[string]any{"type": "integer", "minimum": 0},
					"averageScore":   map[string]any{"type": "number", "minimum": 0, "maximum": 100},
					"passRate":       map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				},
			},
		},
		"required": []any{"studentStats", "summary"},
	},
}
