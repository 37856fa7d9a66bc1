package questiongen

import (
	"fmt"

	"github.com/rahulsv/studyloop/internal/difficulty"
	"github.com/rahulsv/studyloop/internal/llm"
)

// SchemaForLevel builds the JSON schema for LLM question generation at
// the given difficulty level. The question_type enum is restricted to
// the types that level allows, so the provider cannot return a type the
// learner is not ready for.
func SchemaForLevel(level int) *llm.Schema {
	lv := difficulty.LevelFor(level)

	types := make([]any, len(lv.QuestionTypes))
	for i, t := range lv.QuestionTypes {
		types[i] = t
	}

	return &llm.Schema{
		Name:        fmt.Sprintf("quiz-question-l%d", lv.Level),
		Description: "A single quiz question grounded in a course snippet, with answer and explanation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question_text": map[string]any{
					"type":        "string",
					"description": "The question prompt shown to the learner, in plain text",
				},
				"question_type": map[string]any{
					"type":        "string",
					"enum":        types,
					"description": "The question type, one of the allowed types for this level",
				},
				"answer": map[string]any{
					"type":        "string",
					"description": "The expected answer, short and grounded in the snippet",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "A brief rationale referencing the snippet",
				},
				"hint": map[string]any{
					"type":        "string",
					"description": "A short hint. Empty string when hints are not allowed.",
				},
				"concept": map[string]any{
					"type":        "string",
					"description": "The single concept this question tests, lowercase",
				},
			},
			"required":             []any{"question_text", "question_type", "answer", "explanation", "hint", "concept"},
			"additionalProperties": false,
		},
	}
}
