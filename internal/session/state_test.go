package session

import (
	"testing"

	"github.com/rahulsv/studyloop/internal/difficulty"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState("u1", "s1")
	if s.Level != difficulty.DefaultLevel {
		t.Errorf("level = %d, want %d", s.Level, difficulty.DefaultLevel)
	}
	if s.QuestionNumber != 1 {
		t.Errorf("question number = %d, want 1", s.QuestionNumber)
	}
	if s.ScaffoldingActive {
		t.Error("scaffolding active on a fresh session")
	}
}

func TestPushBoundsHistory(t *testing.T) {
	s := NewState("u1", "s1")
	for i := 0; i < MaxHistory+5; i++ {
		s.Push(difficulty.PerformanceRecord{QuestionNumber: i + 1})
	}
	if len(s.History) != MaxHistory {
		t.Fatalf("history len = %d, want %d", len(s.History), MaxHistory)
	}
	// Newest first: the last pushed record leads.
	if s.History[0].QuestionNumber != MaxHistory+5 {
		t.Errorf("newest question = %d, want %d", s.History[0].QuestionNumber, MaxHistory+5)
	}
}

func TestHints(t *testing.T) {
	s := NewState("u1", "s1")
	s.Level = 1 // allowance 3

	if got := s.UseHint(); got != 2 {
		t.Errorf("remaining after 1 hint = %d, want 2", got)
	}
	s.UseHint()
	s.UseHint()
	// Over-consuming never goes negative.
	if got := s.UseHint(); got != 0 {
		t.Errorf("remaining after 4 hints = %d, want 0", got)
	}

	s.Level = 6 // allowance 0
	s.HintsUsed = 0
	if got := s.HintsRemaining(); got != 0 {
		t.Errorf("remaining at level 6 = %d, want 0", got)
	}
}
