package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
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
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("scenario").
			Optional().
			Comment("Scenario type for this session"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Total session time in milliseconds (on end only)"),
		field.Int("retries").
			Default(0).
			Comment("Retry count (on end only)"),
		field.Int("help_requests").
			Default(0).
			Comment("Help request count (on end only)"),
		field.Int("frustration_events").
			Default(0).
			Comment("Frustration event count (on end only)"),
		field.JSON("errors_per_task", map[string]int{}).
			Optional().
			Comment("Per-task error counts (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("action"),
	}
}
