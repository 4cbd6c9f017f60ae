package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records a completed knowledge check (pre or post).
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.String("phase").
			NotEmpty().
			Comment("pre or post"),
		field.Float("score").
			Comment("Assessment score, 0-100"),
		field.JSON("answers", []string{}).
			Optional().
			Comment("Raw answers given"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("phase"),
	}
}
