package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records quiz session lifecycle events (start/stop/complete).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Server-assigned session identifier"),
		field.String("action").
			NotEmpty().
			Comment("start, stop or complete"),
		field.String("subject").
			Default("").
			Comment("Subject taught in the session"),
		field.String("chapter").
			Default(""),
		field.String("topic").
			Default(""),
		field.String("class_name").
			Default("").
			Comment("Class label, e.g. 10-A"),
		field.Int("class_level").
			Default(0),
		field.JSON("subtopics", []string{}).
			Optional().
			Comment("Planned subtopic list (on start only)"),
		field.Float("mastery_percentage").
			Default(0).
			Comment("Final class mastery 0-100 (on stop/complete only)"),
		field.Int("questions_asked").
			Default(0).
			Comment("Total questions served (on stop/complete only)"),
		field.Int("intervention_count").
			Default(0).
			Comment("Teacher interventions triggered (on stop/complete only)"),
		field.String("stop_reason").
			Default("").
			Comment("Server-reported reason (on stop only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
