package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizResult records one quiz attempt from start to completion.
type QuizResult struct {
	ent.Schema
}

// QuestionDetail is the serialized per-question record stored with a
// quiz result.
type QuestionDetail struct {
	Number          int     `json:"number"`
	Concept         string  `json:"concept"`
	QuestionType    string  `json:"question_type"`
	DifficultyLevel int     `json:"difficulty_level"`
	Score           float64 `json:"score"`
	Correct         bool    `json:"correct"`
	Attempts        int     `json:"attempts"`
}

func (QuizResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("session_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.Int("total_questions").
			Default(0).
			Comment("Planned question count"),
		field.Int("correct_answers").
			Default(0),
		field.Int("total_mistakes").
			Default(0),
		field.Time("started_at"),
		field.Time("completed_at").
			Optional().
			Comment("Unset while the quiz is in progress"),
		field.JSON("question_details", []QuestionDetail{}).
			Optional().
			Comment("Per-question breakdown"),
	}
}

func (QuizResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("topic"),
	}
}
