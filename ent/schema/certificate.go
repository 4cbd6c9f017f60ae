package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Certificate is the durable record of a completed training run.
// Rows are append-only: this application never updates or deletes them.
type Certificate struct {
	ent.Schema
}

func (Certificate) Fields() []ent.Field {
	return []ent.Field{
		field.String("cert_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Public certificate identifier (cert_<ms>_<rand>)"),
		field.String("user_name").
			NotEmpty().
			Immutable(),
		field.Int("score").
			Immutable().
			Comment("Display score, 0-100"),
		field.String("date").
			NotEmpty().
			Immutable().
			Comment("Calendar date of completion"),
		field.Int("scenarios_completed").
			Immutable(),
		field.String("badge").
			NotEmpty().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Certificate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cert_id"),
		index.Fields("created_at"),
	}
}
