package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProfileSnapshot is a rollup of a user's progress at a point in time,
// letting the dashboard load without replaying the full event log.
type ProfileSnapshot struct {
	ent.Schema
}

func (ProfileSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Event sequence number at the time of snapshot"),
		field.Time("timestamp").
			Default(time.Now),
		field.JSON("data", map[string]any{}).
			Comment("Profile rollup as JSON"),
	}
}

func (ProfileSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
