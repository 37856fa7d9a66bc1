package store

import (
	"context"
	"fmt"

	"github.com/rahulsv/studyloop/ent"
	"github.com/rahulsv/studyloop/ent/adjustmentevent"
	"github.com/rahulsv/studyloop/ent/predicate"
)

func (r *eventRepo) AppendAdjustment(ctx context.Context, data AdjustmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AdjustmentEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetPreviousLevel(data.PreviousLevel).
		SetNewLevel(data.NewLevel).
		SetAdjustmentType(data.AdjustmentType).
		SetReason(data.Reason).
		SetTriggeredBy(data.TriggeredBy).
		SetScaffoldingRecommended(data.ScaffoldingRecommended).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save adjustment event: %w", err)
	}
	return nil
}

func (r *eventRepo) LastDifficultyLevel(ctx context.Context, userID, sessionID string) (int, bool, error) {
	preds := []predicate.AdjustmentEvent{adjustmentevent.UserID(userID)}
	if sessionID != "" {
		preds = append(preds, adjustmentevent.SessionID(sessionID))
	}

	ae, err := r.client.AdjustmentEvent.Query().
		Where(preds...).
		Order(ent.Desc(adjustmentevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query last difficulty level: %w", err)
	}
	return ae.NewLevel, true, nil
}

func (r *eventRepo) AdjustmentHistory(ctx context.Context, userID, sessionID string, limit int) ([]AdjustmentEventData, error) {
	preds := []predicate.AdjustmentEvent{adjustmentevent.UserID(userID)}
	if sessionID != "" {
		preds = append(preds, adjustmentevent.SessionID(sessionID))
	}

	events, err := r.client.AdjustmentEvent.Query().
		Where(preds...).
		Order(ent.Desc(adjustmentevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query adjustment history: %w", err)
	}

	out := make([]AdjustmentEventData, 0, len(events))
	for _, e := range events {
		out = append(out, AdjustmentEventData{
			Sequence:               e.Sequence,
			UserID:                 e.UserID,
			SessionID:              e.SessionID,
			PreviousLevel:          e.PreviousLevel,
			NewLevel:               e.NewLevel,
			AdjustmentType:         e.AdjustmentType,
			Reason:                 e.Reason,
			TriggeredBy:            e.TriggeredBy,
			ScaffoldingRecommended: e.ScaffoldingRecommended,
			Timestamp:              e.Timestamp,
		})
	}
	return out, nil
}
