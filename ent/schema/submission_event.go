package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmissionEvent records one simulated answer batch and the evaluation the
// server returned for it.
type SubmissionEvent struct {
	ent.Schema
}

func (SubmissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SubmissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("subtopic").
			Default(""),
		field.String("preset").
			Default("").
			Comment("Simulator preset used: pass, fail, random, custom"),
		field.Int("response_count").
			Default(0).
			Comment("Number of simulated students"),
		field.Int("correct_count").
			Default(0),
		field.Float("question_consistency").
			Default(0).
			Comment("Evaluation score 0-100"),
		field.Float("mastery_percentage").
			Default(0).
			Comment("Running class mastery 0-100"),
		field.String("outcome").
			Default("").
			Comment("Server verdict: strong, weak, borderline"),
		field.String("next_action").
			Default("").
			Comment("Server instruction after this submission"),
	}
}

func (SubmissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
	}
}
