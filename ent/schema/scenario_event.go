package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScenarioEvent records the scored result of one completed scenario run.
type ScenarioEvent struct {
	ent.Schema
}

func (ScenarioEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScenarioEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.String("scenario").
			NotEmpty().
			Comment("visual, hearing, motor, or ar"),
		field.Int("tasks_completed").
			Default(0),
		field.Int("total_tasks").
			Default(0),
		field.Int64("completion_time_ms").
			Default(0),
		field.Int("errors").
			Default(0),
		field.Int("help_requests").
			Default(0),
		field.Int("frustration_events").
			Default(0),
		field.Float("total").
			Comment("Scenario score total (uncapped)"),
		field.JSON("breakdown", map[string]float64{}).
			Optional().
			Comment("Per-component point split"),
	}
}

func (ScenarioEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("scenario"),
	}
}
