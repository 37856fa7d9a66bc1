package difficulty

import "time"

const (
	// OptimalZoneLow and OptimalZoneHigh bound the closed score interval
	// considered appropriately challenging.
	OptimalZoneLow  = 0.60
	OptimalZoneHigh = 0.85

	// CorrectThreshold is the score at or above which an answer counts as
	// correct for streak and mastery purposes.
	CorrectThreshold = 0.60
)

// PerformanceRecord captures a single answer event. Records are appended
// to the bounded session history (newest-first) and independently written
// to the unbounded performance event log.
type PerformanceRecord struct {
	UserID          string    `json:"user_id"`
	SessionID       string    `json:"session_id"`
	QuizID          int       `json:"quiz_id,omitempty"`
	QuestionNumber  int       `json:"question_number"`
	Score           float64   `json:"score"`
	ResponseTimeMs  int       `json:"response_time_ms"`
	HintsUsed       int       `json:"hints_used"`
	DifficultyLevel int       `json:"difficulty_level"`
	ConceptTested   string    `json:"concept_tested"`
	QuestionType    string    `json:"question_type"`
	InOptimalZone   bool      `json:"in_optimal_zone"`
	Timestamp       time.Time `json:"timestamp"`
}

// InOptimalZone reports whether score falls in [OptimalZoneLow, OptimalZoneHigh].
func InOptimalZone(score float64) bool {
	return score >= OptimalZoneLow && score <= OptimalZoneHigh
}

// AdjustmentType classifies a difficulty decision.
type AdjustmentType string

const (
	AdjustIncrease AdjustmentType = "increase"
	AdjustDecrease AdjustmentType = "decrease"
	AdjustMaintain AdjustmentType = "maintain"
)

// Adjustment trigger sources.
const (
	TriggerAnswer       = "answer"
	TriggerManual       = "manual"
	TriggerSessionStart = "session_start"
)

// Adjustment records one difficulty decision with its reasoning. At the
// ladder bounds the attempted type is reported ("increase" at level 6,
// "decrease" at level 1); NewLevel == PreviousLevel signals saturation.
type Adjustment struct {
	UserID                 string         `json:"user_id"`
	SessionID              string         `json:"session_id"`
	PreviousLevel          int            `json:"previous_level"`
	NewLevel               int            `json:"new_level"`
	Type                   AdjustmentType `json:"adjustment_type"`
	Reason                 string         `json:"reason"`
	TriggeredBy            string         `json:"triggered_by"`
	ScaffoldingRecommended bool           `json:"scaffolding_recommended"`
	Timestamp              time.Time      `json:"timestamp"`
}
