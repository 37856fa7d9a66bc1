package store

import (
	"context"
	"time"

	"github.com/rahulsv/studyloop/ent/schema"
)

// PerformanceEventData captures a single scored answer.
type PerformanceEventData struct {
	Sequence        int64
	UserID          string
	SessionID       string
	QuizID          int
	QuestionNumber  int
	Score           float64
	ResponseTimeMs  int
	HintsUsed       int
	DifficultyLevel int
	ConceptTested   string
	QuestionType    string
	InOptimalZone   bool
	Timestamp       time.Time
}

// AdjustmentEventData captures one difficulty decision.
type AdjustmentEventData struct {
	Sequence               int64
	UserID                 string
	SessionID              string
	PreviousLevel          int
	NewLevel               int
	AdjustmentType         string
	Reason                 string
	TriggeredBy            string
	ScaffoldingRecommended bool
	Timestamp              time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendPerformance records a scored answer and returns its global
	// sequence number.
	AppendPerformance(ctx context.Context, data PerformanceEventData) (int64, error)

	// RecentPerformance returns the most recent performance events for a
	// session, newest first.
	RecentPerformance(ctx context.Context, userID, sessionID string, limit int) ([]PerformanceEventData, error)

	// PerformanceByConcept returns the most recent performance events for
	// a concept across all sessions, newest first.
	PerformanceByConcept(ctx context.Context, userID, concept string, limit int) ([]PerformanceEventData, error)

	// AppendAdjustment records a difficulty decision.
	AppendAdjustment(ctx context.Context, data AdjustmentEventData) error

	// LastDifficultyLevel returns the most recent recorded level for a
	// user. Pass sessionID "" to search across all sessions. The bool is
	// false when no adjustment has ever been recorded.
	LastDifficultyLevel(ctx context.Context, userID, sessionID string) (int, bool, error)

	// AdjustmentHistory returns recent difficulty decisions, newest first.
	// Pass sessionID "" for all sessions.
	AdjustmentHistory(ctx context.Context, userID, sessionID string, limit int) ([]AdjustmentEventData, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns the most recent LLM request events,
	// newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}

// ConceptMastery is a learner's running mastery state for one concept.
type ConceptMastery struct {
	UserID        string
	ConceptName   string
	MasteryLevel  float64
	TimesSeen     int
	TimesCorrect  int
	LastSeen      time.Time
	KnowledgeType string
	AvgDifficulty float64
	MaxDifficulty int
	StruggleArea  string
	Complexity    int
}

// Gap is an identified knowledge gap.
type Gap struct {
	ID              int
	UserID          string
	ConceptName     string
	GapType         string
	IdentifiedAt    time.Time
	ResolvedAt      time.Time
	RelatedConcepts []string
}

// ConceptRepo manages per-concept mastery state and knowledge gaps.
type ConceptRepo interface {
	// UpdateMastery increments the seen/correct counters for a concept
	// and recomputes the mastery ratio, creating the row on first sight.
	// knowledgeType is only written when non-empty.
	UpdateMastery(ctx context.Context, userID, concept string, correct bool, knowledgeType string) error

	// RecordDifficultyAchievement folds a level into the concept's
	// running difficulty average and raises the max when correct.
	RecordDifficultyAchievement(ctx context.Context, userID, concept string, level int, correct bool) error

	// SetStruggleArea records the last detected struggle area.
	SetStruggleArea(ctx context.Context, userID, concept, area string) error

	// Mastery returns the mastery row for a concept, or nil if the
	// concept has never been seen.
	Mastery(ctx context.Context, userID, concept string) (*ConceptMastery, error)

	// Complexity returns the stored complexity for a concept. Unknown
	// concepts report the default complexity of 3.
	Complexity(ctx context.Context, userID, concept string) (int, error)

	// AllMastery returns all concepts at or above minMastery, strongest
	// first.
	AllMastery(ctx context.Context, userID string, minMastery float64) ([]ConceptMastery, error)

	// WeakConcepts returns concepts below the mastery threshold, weakest
	// first.
	WeakConcepts(ctx context.Context, userID string, threshold float64) ([]ConceptMastery, error)

	// AddGap records a knowledge gap and returns its ID.
	AddGap(ctx context.Context, userID, concept, gapType string, related []string) (int, error)

	// ResolveGap marks a gap as resolved.
	ResolveGap(ctx context.Context, gapID int) error

	// ActiveGaps returns unresolved gaps, newest first.
	ActiveGaps(ctx context.Context, userID string) ([]Gap, error)
}

// QuestionDetail is the per-question record stored with a quiz result.
type QuestionDetail = schema.QuestionDetail

// QuizSummary is one quiz attempt.
type QuizSummary struct {
	ID             int
	UserID         string
	SessionID      string
	Topic          string
	TotalQuestions int
	CorrectAnswers int
	TotalMistakes  int
	StartedAt      time.Time
	CompletedAt    time.Time
	Details        []QuestionDetail
}

// LearnerStats aggregates a learner's history for reporting.
type LearnerStats struct {
	TotalQuizzes   int     `json:"total_quizzes"`
	TotalQuestions int     `json:"total_questions"`
	TotalCorrect   int     `json:"total_correct"`
	TotalMistakes  int     `json:"total_mistakes"`
	TopicsStudied  int     `json:"topics_studied"`
	ConceptsSeen   int     `json:"concepts_seen"`
	AvgMastery     float64 `json:"avg_mastery"`
	MasteredCount  int     `json:"mastered_count"`
	ActiveGaps     int     `json:"active_gaps"`
}

// QuizRepo manages quiz result rows.
type QuizRepo interface {
	// Start records a quiz start and returns the quiz ID.
	Start(ctx context.Context, userID, sessionID, topic string, totalQuestions int) (int, error)

	// UpdateProgress overwrites the running counters and per-question
	// details for an in-progress quiz.
	UpdateProgress(ctx context.Context, quizID, correct, mistakes int, details []QuestionDetail) error

	// Complete stamps the quiz as finished.
	Complete(ctx context.Context, quizID int) error

	// History returns recent quiz attempts, newest first. Pass topic ""
	// for all topics.
	History(ctx context.Context, userID, topic string, limit int) ([]QuizSummary, error)

	// Stats aggregates quiz, mastery, and gap totals for a learner.
	Stats(ctx context.Context, userID string) (LearnerStats, error)
}

// SessionSnapshot is a point-in-time capture of session state.
type SessionSnapshot struct {
	ID        int
	UserID    string
	SessionID string
	Sequence  int64
	Timestamp time.Time
	Data      map[string]any
}

// SnapshotRepo manages session state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *SessionSnapshot) error

	// LatestForUser returns the user's most recent snapshot, or nil if
	// none exist.
	LatestForUser(ctx context.Context, userID string) (*SessionSnapshot, error)

	// Prune deletes all but the N most recent snapshots for a user.
	Prune(ctx context.Context, userID string, keep int) error
}
