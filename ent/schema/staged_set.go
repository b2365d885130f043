package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StagedSet holds the active problem set awaiting an attempt. At most
// one row is live at a time; staging a new set replaces the old one.
type StagedSet struct {
	ent.Schema
}

func (StagedSet) Fields() []ent.Field {
	return []ent.Field{
		field.String("set_id").
			NotEmpty().
			Unique().
			Comment("Client-side problem set id"),
		field.String("source").
			NotEmpty().
			Comment("generated or retry"),
		field.String("payload").
			NotEmpty().
			Comment("Problem set serialized as JSON; validated on load"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the set was staged"),
	}
}

func (StagedSet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
