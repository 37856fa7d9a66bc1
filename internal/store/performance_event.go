package store

import (
	"context"
	"fmt"

	"github.com/rahulsv/studyloop/ent"
	"github.com/rahulsv/studyloop/ent/performanceevent"
)

func (r *eventRepo) AppendPerformance(ctx context.Context, data PerformanceEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.PerformanceEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetQuestionNumber(data.QuestionNumber).
		SetScore(data.Score).
		SetResponseTimeMs(data.ResponseTimeMs).
		SetHintsUsed(data.HintsUsed).
		SetDifficultyLevel(data.DifficultyLevel).
		SetConceptTested(data.ConceptTested).
		SetQuestionType(data.QuestionType).
		SetInOptimalZone(data.InOptimalZone)

	if data.QuizID != 0 {
		builder = builder.SetQuizID(data.QuizID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save performance event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) RecentPerformance(ctx context.Context, userID, sessionID string, limit int) ([]PerformanceEventData, error) {
	events, err := r.client.PerformanceEvent.Query().
		Where(
			performanceevent.UserID(userID),
			performanceevent.SessionID(sessionID),
		).
		Order(ent.Desc(performanceevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent performance: %w", err)
	}
	return performanceEventsToData(events), nil
}

func (r *eventRepo) PerformanceByConcept(ctx context.Context, userID, concept string, limit int) ([]PerformanceEventData, error) {
	events, err := r.client.PerformanceEvent.Query().
		Where(
			performanceevent.UserID(userID),
			performanceevent.ConceptTested(concept),
		).
		Order(ent.Desc(performanceevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query performance by concept: %w", err)
	}
	return performanceEventsToData(events), nil
}

func performanceEventsToData(events []*ent.PerformanceEvent) []PerformanceEventData {
	out := make([]PerformanceEventData, 0, len(events))
	for _, e := range events {
		out = append(out, PerformanceEventData{
			Sequence:        e.Sequence,
			UserID:          e.UserID,
			SessionID:       e.SessionID,
			QuizID:          e.QuizID,
			QuestionNumber:  e.QuestionNumber,
			Score:           e.Score,
			ResponseTimeMs:  e.ResponseTimeMs,
			HintsUsed:       e.HintsUsed,
			DifficultyLevel: e.DifficultyLevel,
			ConceptTested:   e.ConceptTested,
			QuestionType:    e.QuestionType,
			InOptimalZone:   e.InOptimalZone,
			Timestamp:       e.Timestamp,
		})
	}
	return out
}
