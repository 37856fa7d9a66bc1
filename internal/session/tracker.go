package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rahulsv/studyloop/internal/difficulty"
	"github.com/rahulsv/studyloop/internal/scaffolding"
	"github.com/rahulsv/studyloop/internal/store"
)

// scaffoldingErrorWindow is how many recent records struggle detection
// inspects.
const scaffoldingErrorWindow = 3

// warnf reports a non-fatal persistence failure. Difficulty decisions
// must keep flowing from session state even when the store is down.
var warnf = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "studyloop: "+format+"\n", args...)
}

// RecordInput is one answer fed to the tracker.
type RecordInput struct {
	Score          float64
	ResponseTimeMs int
	HintsUsed      int
	Concept        string
	QuestionType   string
}

// Tracker applies the difficulty engine to session state and persists
// the resulting events. Store writes are best effort: failures are
// logged and the in-memory decision stands.
type Tracker struct {
	events   store.EventRepo
	concepts store.ConceptRepo
}

// NewTracker creates a tracker. Both repos may be nil, in which case
// the tracker runs purely on session state.
func NewTracker(events store.EventRepo, concepts store.ConceptRepo) *Tracker {
	return &Tracker{events: events, concepts: concepts}
}

// RestoreLevel initializes the session's difficulty level from the
// learner's last recorded adjustment in any prior session. Without one
// the default level stands.
func (t *Tracker) RestoreLevel(ctx context.Context, state *State) {
	if t.events == nil {
		return
	}
	level, ok, err := t.events.LastDifficultyLevel(ctx, state.UserID, "")
	if err != nil {
		warnf("restore level: %v", err)
		return
	}
	if !ok {
		return
	}

	restored := difficulty.ClampLevel(level)
	if restored == state.Level {
		return
	}
	prev := state.Level
	state.Level = restored

	err = t.events.AppendAdjustment(ctx, store.AdjustmentEventData{
		UserID:         state.UserID,
		SessionID:      state.SessionID,
		PreviousLevel:  prev,
		NewLevel:       restored,
		AdjustmentType: string(difficulty.AdjustMaintain),
		Reason:         "restored from previous session",
		TriggeredBy:    difficulty.TriggerSessionStart,
	})
	if err != nil {
		warnf("persist restore adjustment: %v", err)
	}
}

// RecordPerformance records a scored answer, runs the difficulty
// engine over the updated history, and applies the decision to the
// session. The returned result always reflects the in-memory state.
func (t *Tracker) RecordPerformance(ctx context.Context, state *State, in RecordInput) RecordResult {
	record := difficulty.PerformanceRecord{
		UserID:          state.UserID,
		SessionID:       state.SessionID,
		QuizID:          state.QuizID,
		QuestionNumber:  state.QuestionNumber,
		Score:           in.Score,
		ResponseTimeMs:  in.ResponseTimeMs,
		HintsUsed:       in.HintsUsed,
		DifficultyLevel: state.Level,
		ConceptTested:   in.Concept,
		QuestionType:    in.QuestionType,
		InOptimalZone:   difficulty.InOptimalZone(in.Score),
		Timestamp:       time.Now().UTC(),
	}
	state.Push(record)
	state.QuestionNumber++

	adj := difficulty.Adjust(state.Level, state.History, t.complexity(ctx, state.UserID, in.Concept))
	adj.UserID = state.UserID
	adj.SessionID = state.SessionID

	if adj.NewLevel != state.Level {
		state.Level = adj.NewLevel
	}
	state.ScaffoldingActive = adj.ScaffoldingRecommended
	state.HintsUsed = 0
	state.LastAdjustment = &adj

	correct := in.Score >= difficulty.CorrectThreshold
	if correct {
		state.ConsecutiveCorrect++
		state.ConsecutiveIncorrect = 0
	} else {
		state.ConsecutiveIncorrect++
		state.ConsecutiveCorrect = 0
	}

	t.persistAnswer(ctx, state, record, adj, correct)

	trend := difficulty.AnalyzeTrend(state.History, difficulty.DefaultTrendWindow)
	return RecordResult{
		Status:              StatusSuccess,
		PerformanceRecorded: true,
		InOptimalZone:       record.InOptimalZone,
		Adjustment: AdjustmentSummary{
			Type:          adj.Type,
			PreviousLevel: adj.PreviousLevel,
			NewLevel:      adj.NewLevel,
			Reason:        adj.Reason,
		},
		Trend: TrendSummary{
			AvgScore:           trend.AvgScore,
			TrendDirection:     trend.ScoreTrend,
			ConsecutiveCorrect: trend.ConsecutiveCorrect,
		},
	}
}

// Level reports the current difficulty level and its metadata.
func (t *Tracker) Level(state *State) LevelResult {
	lv := difficulty.LevelFor(state.Level)
	return LevelResult{
		Status:            StatusSuccess,
		Level:             lv.Level,
		Name:              lv.Name,
		HintAllowance:     lv.HintAllowance,
		HintsRemaining:    state.HintsRemaining(),
		QuestionTypes:     lv.QuestionTypes,
		ScaffoldingActive: state.ScaffoldingActive,
	}
}

// SetLevel manually moves the session to the given level, clamping to
// the valid range, and resets the hint counter.
func (t *Tracker) SetLevel(ctx context.Context, state *State, level int) SetLevelResult {
	newLevel := difficulty.ClampLevel(level)
	prev := state.Level

	state.Level = newLevel
	state.HintsUsed = 0

	if t.events != nil {
		err := t.events.AppendAdjustment(ctx, store.AdjustmentEventData{
			UserID:         state.UserID,
			SessionID:      state.SessionID,
			PreviousLevel:  prev,
			NewLevel:       newLevel,
			AdjustmentType: adjustmentTypeFor(prev, newLevel),
			Reason:         "manual level change",
			TriggeredBy:    difficulty.TriggerManual,
		})
		if err != nil {
			warnf("persist manual adjustment: %v", err)
		}
	}

	lv := difficulty.LevelFor(newLevel)
	return SetLevelResult{
		Status:        StatusSuccess,
		PreviousLevel: prev,
		NewLevel:      newLevel,
		LevelName:     lv.Name,
		HintAllowance: lv.HintAllowance,
	}
}

// Scaffolding returns support hints when scaffolding is active. The
// struggle area is detected from the low-scoring answers among the last
// few history records.
func (t *Tracker) Scaffolding(ctx context.Context, state *State) ScaffoldingResult {
	if !state.ScaffoldingActive {
		return ScaffoldingResult{
			Status:            StatusSuccess,
			ScaffoldingActive: false,
			Message:           "Scaffolding is not currently active",
		}
	}

	window := state.History
	if len(window) > scaffoldingErrorWindow {
		window = window[:scaffoldingErrorWindow]
	}

	var errs []scaffolding.ErrorRecord
	for _, r := range window {
		if r.Score < difficulty.CorrectThreshold {
			errs = append(errs, scaffolding.ErrorRecord{
				QuestionType: r.QuestionType,
				Score:        r.Score,
				Concept:      r.ConceptTested,
			})
		}
	}

	area := scaffolding.DetectStruggleArea(errs)

	if t.concepts != nil && len(errs) > 0 && errs[0].Concept != "" {
		if err := t.concepts.SetStruggleArea(ctx, state.UserID, errs[0].Concept, area); err != nil {
			warnf("persist struggle area: %v", err)
		}
	}

	return ScaffoldingResult{
		Status:            StatusSuccess,
		ScaffoldingActive: true,
		StruggleArea:      area,
		Hints:             scaffolding.SupportFor(area),
	}
}

// complexity looks up the stored concept complexity, falling back to
// the default when the concept is unknown or the store fails.
func (t *Tracker) complexity(ctx context.Context, userID, concept string) int {
	if t.concepts == nil || concept == "" {
		return difficulty.DefaultComplexity
	}
	c, err := t.concepts.Complexity(ctx, userID, concept)
	if err != nil {
		warnf("look up complexity for %q: %v", concept, err)
		return difficulty.DefaultComplexity
	}
	return c
}

// persistAnswer writes the answer's events and mastery updates.
// Maintain decisions are not persisted; the adjustment log records
// level changes, not every answer.
func (t *Tracker) persistAnswer(ctx context.Context, state *State, record difficulty.PerformanceRecord, adj difficulty.Adjustment, correct bool) {
	if t.events != nil {
		_, err := t.events.AppendPerformance(ctx, store.PerformanceEventData{
			UserID:          record.UserID,
			SessionID:       record.SessionID,
			QuizID:          record.QuizID,
			QuestionNumber:  record.QuestionNumber,
			Score:           record.Score,
			ResponseTimeMs:  record.ResponseTimeMs,
			HintsUsed:       record.HintsUsed,
			DifficultyLevel: record.DifficultyLevel,
			ConceptTested:   record.ConceptTested,
			QuestionType:    record.QuestionType,
			InOptimalZone:   record.InOptimalZone,
		})
		if err != nil {
			warnf("persist performance event: %v", err)
		}

		if adj.Type != difficulty.AdjustMaintain {
			err := t.events.AppendAdjustment(ctx, store.AdjustmentEventData{
				UserID:                 adj.UserID,
				SessionID:              adj.SessionID,
				PreviousLevel:          adj.PreviousLevel,
				NewLevel:               adj.NewLevel,
				AdjustmentType:         string(adj.Type),
				Reason:                 adj.Reason,
				TriggeredBy:            adj.TriggeredBy,
				ScaffoldingRecommended: adj.ScaffoldingRecommended,
			})
			if err != nil {
				warnf("persist adjustment event: %v", err)
			}
		}
	}

	if t.concepts != nil && record.ConceptTested != "" {
		if err := t.concepts.UpdateMastery(ctx, record.UserID, record.ConceptTested, correct, ""); err != nil {
			warnf("update mastery for %q: %v", record.ConceptTested, err)
		}
		if err := t.concepts.RecordDifficultyAchievement(ctx, record.UserID, record.ConceptTested, record.DifficultyLevel, correct); err != nil {
			warnf("record difficulty achievement for %q: %v", record.ConceptTested, err)
		}
	}
}

func adjustmentTypeFor(prev, next int) string {
	switch {
	case next > prev:
		return string(difficulty.AdjustIncrease)
	case next < prev:
		return string(difficulty.AdjustDecrease)
	default:
		return string(difficulty.AdjustMaintain)
	}
}
