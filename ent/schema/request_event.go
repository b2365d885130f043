package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RequestEvent records a single backend API call.
type RequestEvent struct {
	ent.Schema
}

func (RequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("method").
			NotEmpty().
			Comment("HTTP method"),
		field.String("path").
			NotEmpty().
			Comment("Request path without query"),
		field.Int("status").
			Default(0).
			Comment("HTTP status code, 0 when no response arrived"),
		field.Int64("latency_ms").
			Comment("Wall-clock request duration"),
		field.Bool("success").
			Comment("True for a 2xx response"),
		field.String("error_message").
			Optional().
			Comment("Transport error, if any"),
	}
}

func (RequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("path"),
		index.Fields("success"),
	}
}
