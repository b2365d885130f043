package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded submission as seen by this client.
// The server record is authoritative; this is the local trace used for
// the home screen counters and offline listing.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Server-assigned attempt id"),
		field.String("problemset_id").
			Optional().
			Comment("Client-side id of the staged set that was attempted"),
		field.Int("total").
			Comment("Number of questions in the attempt"),
		field.Int("correct").
			Comment("Number answered correctly"),
		field.Int("score").
			Comment("Rounded percentage score"),
		field.Int("duration_secs").
			Default(0).
			Comment("finished_at - started_at in seconds"),
		field.String("source").
			NotEmpty().
			Comment("generated or retry"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
	}
}
