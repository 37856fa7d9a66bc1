package questiongen

// Question represents a generated quiz question ready for display.
type Question struct {
	// Text is the question prompt displayed to the learner.
	Text string

	// Type is the question type, e.g. "definition" or "scenario".
	// Always one of the types allowed at the level the question was
	// generated for.
	Type string

	// Answer is the expected answer as a short string. Shown on reveal;
	// the conversation layer decides how to grade against it.
	Answer string

	// Explanation is a brief rationale shown after the learner answers.
	// Always present.
	Explanation string

	// Hint is an optional short hint the learner can request.
	// Empty at levels with no hint allowance.
	Hint string

	// Concept is the concept this question tests, used for mastery
	// tracking when the answer is recorded.
	Concept string

	// Level is the difficulty level this question was generated for.
	Level int
}

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	// Snippet is the course-material excerpt the question must be
	// grounded in.
	Snippet string

	// Topic is the quiz topic, e.g. "photosynthesis".
	Topic string

	// Level is the current difficulty level (1-6). Out-of-range values
	// are clamped.
	Level int

	// PriorQuestions contains the Text of questions already asked in
	// this session. Used for deduplication in the prompt.
	PriorQuestions []string

	// StruggleArea is the learner's detected struggle area when
	// scaffolding is active. Empty when no scaffolding applies.
	StruggleArea string
}
