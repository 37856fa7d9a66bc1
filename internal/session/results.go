package session

import (
	"github.com/rahulsv/studyloop/internal/difficulty"
	"github.com/rahulsv/studyloop/internal/scaffolding"
)

// Result statuses. Every operation result carries one so conversation
// layers can branch without inspecting Go errors.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// AdjustmentSummary is the compact adjustment view returned to callers.
type AdjustmentSummary struct {
	Type          difficulty.AdjustmentType `json:"type"`
	PreviousLevel int                       `json:"previous_level"`
	NewLevel      int                       `json:"new_level"`
	Reason        string                    `json:"reason"`
}

// TrendSummary is the compact trend view returned with each answer.
type TrendSummary struct {
	AvgScore           float64 `json:"avg_score"`
	TrendDirection     string  `json:"trend_direction"`
	ConsecutiveCorrect int     `json:"consecutive_correct"`
}

// RecordResult is returned by Tracker.RecordPerformance.
type RecordResult struct {
	Status              string            `json:"status"`
	ErrorMessage        string            `json:"error_message,omitempty"`
	PerformanceRecorded bool              `json:"performance_recorded"`
	InOptimalZone       bool              `json:"in_optimal_zone"`
	Adjustment          AdjustmentSummary `json:"difficulty_adjustment"`
	Trend               TrendSummary      `json:"trend"`
}

// LevelResult is returned by Tracker.Level.
type LevelResult struct {
	Status            string   `json:"status"`
	Level             int      `json:"level"`
	Name              string   `json:"name"`
	HintAllowance     int      `json:"hint_allowance"`
	HintsRemaining    int      `json:"hints_remaining"`
	QuestionTypes     []string `json:"question_types"`
	ScaffoldingActive bool     `json:"scaffolding_active"`
}

// SetLevelResult is returned by Tracker.SetLevel.
type SetLevelResult struct {
	Status        string `json:"status"`
	PreviousLevel int    `json:"previous_level"`
	NewLevel      int    `json:"new_level"`
	LevelName     string `json:"level_name"`
	HintAllowance int    `json:"hint_allowance"`
}

// ScaffoldingResult is returned by Tracker.Scaffolding.
type ScaffoldingResult struct {
	Status            string              `json:"status"`
	ScaffoldingActive bool                `json:"scaffolding_active"`
	StruggleArea      string              `json:"struggle_area,omitempty"`
	Hints             scaffolding.Support `json:"hints,omitempty"`
	Message           string              `json:"message,omitempty"`
}
