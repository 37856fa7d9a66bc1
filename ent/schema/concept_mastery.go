package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConceptMastery tracks a learner's running mastery of one concept.
// One row per (user, concept), updated in place after every answer.
type ConceptMastery struct {
	ent.Schema
}

func (ConceptMastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("concept_name").NotEmpty(),
		field.Float("mastery_level").
			Default(0.0).
			Comment("times_correct / times_seen, in [0.0, 1.0]"),
		field.Int("times_seen").
			Default(0),
		field.Int("times_correct").
			Default(0),
		field.Time("last_seen").
			Optional(),
		field.String("knowledge_type").
			Default("").
			Comment("declarative, procedural, or conditional"),
		field.Float("avg_difficulty").
			Default(3.0).
			Comment("Running average of levels this concept was answered at"),
		field.Int("max_difficulty").
			Default(1).
			Comment("Highest level answered correctly"),
		field.String("struggle_area").
			Optional().
			Comment("Last detected struggle area, if scaffolding fired"),
		field.Int("complexity").
			Default(3).
			Range(1, 5).
			Comment("Inherent concept complexity, scales adjustment thresholds"),
	}
}

func (ConceptMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "concept_name").Unique(),
		index.Fields("user_id"),
	}
}
