package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoreEvent records a computed empathy score the caller chose to keep.
type ScoreEvent struct {
	ent.Schema
}

func (ScoreEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScoreEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.String("user_name").
			Optional(),
		field.Float("total").
			Comment("Composite empathy score (unclamped)"),
		field.String("badge").
			NotEmpty().
			Comment("Badge tier at the time of scoring"),
		field.JSON("breakdown", map[string]float64{}).
			Optional().
			Comment("Per-dimension diagnostic values, 0-100 scaled"),
	}
}

func (ScoreEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
	}
}
