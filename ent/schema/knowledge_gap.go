package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeGap marks a concept a learner is missing or weak on.
// Gaps stay active until explicitly resolved.
type KnowledgeGap struct {
	ent.Schema
}

func (KnowledgeGap) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("concept_name").NotEmpty(),
		field.String("gap_type").
			NotEmpty().
			Comment("missing, weak, or misconception"),
		field.Time("identified_at"),
		field.Time("resolved_at").
			Optional(),
		field.Strings("related_concepts").
			Optional(),
	}
}

func (KnowledgeGap) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
