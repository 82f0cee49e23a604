package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIRequestEvent records every call to the remote quiz service for latency
// tracking and debugging.
type APIRequestEvent struct {
	ent.Schema
}

func (APIRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (APIRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("operation").
			NotEmpty().
			Comment("Service operation: start_session, next_question, submit, ..."),
		field.String("session_id").
			Default("").
			Comment("Empty for operations outside a session"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the request"),
		field.Bool("success").
			Comment("Whether the call succeeded"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}

func (APIRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("operation"),
		index.Fields("session_id"),
		index.Fields("success"),
	}
}
