package store

import (
	"context"
	"fmt"

	"github.com/rahulsv/studyloop/ent"
	"github.com/rahulsv/studyloop/ent/sessionsnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *SessionSnapshot) error {
	_, err := r.client.SessionSnapshot.Create().
		SetUserID(snap.UserID).
		SetSessionID(snap.SessionID).
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(snap.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) LatestForUser(ctx context.Context, userID string) (*SessionSnapshot, error) {
	s, err := r.client.SessionSnapshot.Query().
		Where(sessionsnapshot.UserID(userID)).
		Order(ent.Desc(sessionsnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return &SessionSnapshot{
		ID:        s.ID,
		UserID:    s.UserID,
		SessionID: s.SessionID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      s.Data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, userID string, keep int) error {
	// Find the timestamp threshold: the Nth most recent snapshot.
	snapshots, err := r.client.SessionSnapshot.Query().
		Where(sessionsnapshot.UserID(userID)).
		Order(ent.Desc(sessionsnapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.SessionSnapshot.Delete().
		Where(
			sessionsnapshot.UserID(userID),
			sessionsnapshot.TimestampLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
