package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JudgeEvent records every external judge call for cost tracking and
// debugging. Quiz attempts themselves are never persisted.
type JudgeEvent struct {
	ent.Schema
}

func (JudgeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (JudgeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").
			Unique().
			Immutable().
			Comment("UUID identifying the call across log exports"),
		field.String("provider").
			Comment("Judge provider: openai, anthropic, ollama, gemini"),
		field.String("question").
			Comment("Prompt of the graded question"),
		field.String("language").
			Default("").
			Comment("Requested response language"),
		field.Int("score").
			Default(0).
			Comment("Clamped verdict score, 0 on failure"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the call"),
		field.Bool("success").
			Comment("Whether the call produced a usable verdict"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}

func (JudgeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("success"),
	}
}
