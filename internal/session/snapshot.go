package session

import (
	"context"
	"time"

	"github.com/rahulsv/studyloop/internal/store"
)

// KeepSnapshots is how many session snapshots are retained per learner.
const KeepSnapshots = 10

// SaveSnapshot captures the session's end state. The event log stays
// the source of truth for difficulty; snapshots give reporting a cheap
// view of the last few sessions without replaying events.
func SaveSnapshot(ctx context.Context, repo store.SnapshotRepo, state *State) error {
	if repo == nil {
		return nil
	}

	snap := &store.SessionSnapshot{
		UserID:    state.UserID,
		SessionID: state.SessionID,
		Timestamp: time.Now().UTC(),
		Data: map[string]any{
			"level":                 state.Level,
			"topic":                 state.Topic,
			"questions_answered":    state.QuestionNumber - 1,
			"consecutive_correct":   state.ConsecutiveCorrect,
			"consecutive_incorrect": state.ConsecutiveIncorrect,
			"scaffolding_active":    state.ScaffoldingActive,
			"started_at":            state.StartTime.UTC().Format(time.RFC3339),
		},
	}
	if err := repo.Save(ctx, snap); err != nil {
		return err
	}
	return repo.Prune(ctx, state.UserID, KeepSnapshots)
}

// LastSession returns the learner's most recent session snapshot, nil
// when they have none.
func LastSession(ctx context.Context, repo store.SnapshotRepo, userID string) (*store.SessionSnapshot, error) {
	if repo == nil {
		return nil, nil
	}
	return repo.LatestForUser(ctx, userID)
}
