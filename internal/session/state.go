// Package session holds the runtime state of a learner's quiz session
// and the tracker that drives difficulty decisions from answers.
package session

import (
	"time"

	"github.com/rahulsv/studyloop/internal/difficulty"
)

// MaxHistory is the number of performance records kept in session state.
// The persistent event log is unbounded; this window only feeds the
// difficulty engine and trend analysis.
const MaxHistory = 10

// State tracks the runtime state of an active session. It is owned by a
// single goroutine; all cross-session state lives in the store.
type State struct {
	// UserID identifies the learner.
	UserID string

	// SessionID is the UUID for this session.
	SessionID string

	// Level is the current difficulty level (1-6).
	Level int

	// History holds the most recent performance records, newest first,
	// capped at MaxHistory.
	History []difficulty.PerformanceRecord

	// ScaffoldingActive is set when the last adjustment recommended
	// scaffolding and cleared by the next one that doesn't.
	ScaffoldingActive bool

	// HintsUsed counts hints consumed on the current question. Reset
	// after every recorded answer and on manual level changes.
	HintsUsed int

	// ConsecutiveCorrect and ConsecutiveIncorrect track the current
	// streaks across the whole session, beyond the history window.
	ConsecutiveCorrect   int
	ConsecutiveIncorrect int

	// LastAdjustment is the most recent difficulty decision, nil before
	// the first recorded answer.
	LastAdjustment *difficulty.Adjustment

	// QuestionNumber is the 1-based number of the next question.
	QuestionNumber int

	// QuizID links to the active quiz result row, 0 when no quiz is
	// running.
	QuizID int

	// Topic is the active quiz topic.
	Topic string

	// StartTime is when the session began.
	StartTime time.Time
}

// NewState creates session state at the default difficulty level.
func NewState(userID, sessionID string) *State {
	return &State{
		UserID:         userID,
		SessionID:      sessionID,
		Level:          difficulty.DefaultLevel,
		QuestionNumber: 1,
		StartTime:      time.Now(),
	}
}

// Push prepends a record to the history, trimming to MaxHistory.
func (s *State) Push(r difficulty.PerformanceRecord) {
	s.History = append([]difficulty.PerformanceRecord{r}, s.History...)
	if len(s.History) > MaxHistory {
		s.History = s.History[:MaxHistory]
	}
}

// UseHint consumes one hint for the current question and reports how
// many remain under the current level's allowance.
func (s *State) UseHint() int {
	s.HintsUsed++
	return s.HintsRemaining()
}

// HintsRemaining reports the hints left under the current level's
// allowance, never negative.
func (s *State) HintsRemaining() int {
	remaining := difficulty.LevelFor(s.Level).HintAllowance - s.HintsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
