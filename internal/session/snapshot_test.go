package session

import (
	"context"
	"testing"

	"github.com/rahulsv/studyloop/internal/store"
)

type mockSnapshotRepo struct {
	saved  []*store.SessionSnapshot
	pruned []int
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.SessionSnapshot) error {
	m.saved = append(m.saved, snap)
	return nil
}

func (m *mockSnapshotRepo) LatestForUser(context.Context, string) (*store.SessionSnapshot, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}

func (m *mockSnapshotRepo) Prune(_ context.Context, _ string, keep int) error {
	m.pruned = append(m.pruned, keep)
	return nil
}

func TestSaveSnapshot(t *testing.T) {
	repo := &mockSnapshotRepo{}
	state := NewState("alice", "sess-1")
	state.Level = 4
	state.Topic = "photosynthesis"
	state.QuestionNumber = 6
	state.ConsecutiveCorrect = 3

	if err := SaveSnapshot(context.Background(), repo, state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("saved = %d, want 1", len(repo.saved))
	}
	snap := repo.saved[0]
	if snap.UserID != "alice" || snap.SessionID != "sess-1" {
		t.Errorf("identity = %s/%s, want alice/sess-1", snap.UserID, snap.SessionID)
	}
	if got := snap.Data["level"]; got != 4 {
		t.Errorf("level = %v, want 4", got)
	}
	if got := snap.Data["topic"]; got != "photosynthesis" {
		t.Errorf("topic = %v, want photosynthesis", got)
	}
	if got := snap.Data["questions_answered"]; got != 5 {
		t.Errorf("questions_answered = %v, want 5", got)
	}

	if len(repo.pruned) != 1 || repo.pruned[0] != KeepSnapshots {
		t.Errorf("prune calls = %v, want one with keep=%d", repo.pruned, KeepSnapshots)
	}
}

func TestSaveSnapshot_NilRepo(t *testing.T) {
	if err := SaveSnapshot(context.Background(), nil, NewState("alice", "s")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLastSession(t *testing.T) {
	repo := &mockSnapshotRepo{}

	snap, err := LastSession(context.Background(), repo, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap != nil {
		t.Fatalf("snap = %v, want nil before any session", snap)
	}

	state := NewState("alice", "sess-1")
	state.Topic = "osmosis"
	if err := SaveSnapshot(context.Background(), repo, state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, err = LastSession(context.Background(), repo, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap == nil || snap.Data["topic"] != "osmosis" {
		t.Fatalf("snap = %+v, want last session with topic osmosis", snap)
	}
}
