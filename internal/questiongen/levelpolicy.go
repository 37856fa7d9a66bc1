package questiongen

import (
	"fmt"
	"slices"

	"github.com/rahulsv/studyloop/internal/difficulty"
)

// LevelPolicyValidator checks that the question respects the difficulty
// level it was generated for: the type must be allowed at that level,
// and the hint must be empty at levels with no hint allowance.
type LevelPolicyValidator struct{}

func (v *LevelPolicyValidator) Name() string { return "level-policy" }

func (v *LevelPolicyValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	lv := difficulty.LevelFor(input.Level)

	if !slices.Contains(lv.QuestionTypes, q.Type) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("question_type %q is not allowed at level %d", q.Type, lv.Level),
			Retryable: true,
		}
	}
	if lv.HintAllowance == 0 && q.Hint != "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("hint present but level %d allows no hints", lv.Level),
			Retryable: true,
		}
	}
	return nil
}
