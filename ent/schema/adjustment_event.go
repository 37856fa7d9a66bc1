package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdjustmentEvent records one difficulty decision for audit and for
// restoring a learner's level across sessions.
type AdjustmentEvent struct {
	ent.Schema
}

func (AdjustmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AdjustmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("session_id").NotEmpty(),
		field.Int("previous_level").
			Comment("Level before the decision"),
		field.Int("new_level").
			Comment("Level after the decision"),
		field.String("adjustment_type").
			NotEmpty().
			Comment("increase, decrease, or maintain"),
		field.String("reason").
			Default("").
			Comment("Human-readable reasoning"),
		field.String("triggered_by").
			NotEmpty().
			Comment("answer, manual, or session_start"),
		field.Bool("scaffolding_recommended").
			Default(false),
	}
}

func (AdjustmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
	}
}
