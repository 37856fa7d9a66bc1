package difficulty

const (
	// MinLevel and MaxLevel bound the difficulty ladder.
	MinLevel = 1
	MaxLevel = 6

	// DefaultLevel is where every new session starts.
	DefaultLevel = 3

	// DefaultComplexity is assumed for concepts with no stored complexity.
	DefaultComplexity = 3
)

// Level describes one rung of the difficulty ladder: which question types
// it allows, how many hints the learner may request, and how much time
// pressure applies relative to the baseline.
type Level struct {
	Level         int
	Name          string
	QuestionTypes []string
	HintAllowance int
	TimePressure  float64
	Description   string
}

// levels is the static 6-level configuration. Never mutated at runtime.
var levels = map[int]Level{
	1: {
		Level:         1,
		Name:          "Foundation",
		QuestionTypes: []string{"definition", "recognition", "true_false"},
		HintAllowance: 3,
		TimePressure:  1.5,
		Description:   "Basic recall and recognition",
	},
	2: {
		Level:         2,
		Name:          "Understanding",
		QuestionTypes: []string{"explanation", "comparison", "cause_effect"},
		HintAllowance: 2,
		TimePressure:  1.3,
		Description:   "Comprehension and interpretation",
	},
	3: {
		Level:         3,
		Name:          "Application",
		QuestionTypes: []string{"scenario", "case_study", "problem_solving"},
		HintAllowance: 1,
		TimePressure:  1.0,
		Description:   "Apply knowledge to new situations",
	},
	4: {
		Level:         4,
		Name:          "Analysis",
		QuestionTypes: []string{"breakdown", "pattern_recognition", "critique"},
		HintAllowance: 0,
		TimePressure:  0.9,
		Description:   "Break down and analyze components",
	},
	5: {
		Level:         5,
		Name:          "Synthesis",
		QuestionTypes: []string{"design", "integration", "hypothesis"},
		HintAllowance: 0,
		TimePressure:  0.8,
		Description:   "Combine elements into new patterns",
	},
	6: {
		Level:         6,
		Name:          "Mastery",
		QuestionTypes: []string{"teach_back", "edge_case", "meta_cognition"},
		HintAllowance: 0,
		TimePressure:  0.7,
		Description:   "Expert-level teaching and edge cases",
	},
}

// ClampLevel forces n into [MinLevel, MaxLevel]. Out-of-range levels are
// clamped everywhere in this package, never rejected.
func ClampLevel(n int) int {
	if n < MinLevel {
		return MinLevel
	}
	if n > MaxLevel {
		return MaxLevel
	}
	return n
}

// LevelFor returns the configuration for level n, clamping first.
func LevelFor(n int) Level {
	return levels[ClampLevel(n)]
}

// AllowedQuestionTypes returns the question types for level n.
func AllowedQuestionTypes(n int) []string {
	return LevelFor(n).QuestionTypes
}
