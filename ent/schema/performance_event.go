package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PerformanceEvent records a single scored answer. This is the raw
// input the difficulty engine reads back when deciding adjustments.
type PerformanceEvent struct {
	ent.Schema
}

func (PerformanceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PerformanceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Learner this record belongs to"),
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.Int("quiz_id").
			Optional().
			Comment("Quiz result row this answer belongs to, if any"),
		field.Int("question_number").
			Comment("1-based position within the quiz"),
		field.Float("score").
			Comment("Answer score in [0.0, 1.0]"),
		field.Int("response_time_ms").
			Default(0).
			Comment("Milliseconds to answer"),
		field.Int("hints_used").
			Default(0).
			Comment("Hints consumed on this question"),
		field.Int("difficulty_level").
			Comment("Difficulty level the question was asked at (1-6)"),
		field.String("concept_tested").
			NotEmpty().
			Comment("Concept the question tested"),
		field.String("question_type").
			Default("").
			Comment("Question type, e.g. definition or scenario"),
		field.Bool("in_optimal_zone").
			Default(false).
			Comment("Whether the score fell in [0.60, 0.85]"),
	}
}

func (PerformanceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
		index.Fields("concept_tested"),
	}
}
