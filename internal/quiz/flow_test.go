package quiz

import (
	"context"
	"strings"
	"testing"

	"github.com/rahulsv/studyloop/internal/retrieval"
	"github.com/rahulsv/studyloop/internal/session"
	"github.com/rahulsv/studyloop/internal/store"
)

// mockQuizRepo records lifecycle calls in memory.
type mockQuizRepo struct {
	started   int
	updated   int
	completed int
	lastID    int
	details   []store.QuestionDetail
}

func (m *mockQuizRepo) Start(context.Context, string, string, string, int) (int, error) {
	m.started++
	m.lastID = 7
	return 7, nil
}

func (m *mockQuizRepo) UpdateProgress(_ context.Context, _ int, _, _ int, details []store.QuestionDetail) error {
	m.updated++
	m.details = details
	return nil
}

func (m *mockQuizRepo) Complete(context.Context, int) error {
	m.completed++
	return nil
}

func (m *mockQuizRepo) History(context.Context, string, string, int) ([]store.QuizSummary, error) {
	return nil, nil
}

func (m *mockQuizRepo) Stats(context.Context, string) (store.LearnerStats, error) {
	return store.LearnerStats{}, nil
}

func newTestFlow(t *testing.T, chunks []string) (*Flow, *mockQuizRepo) {
	t.Helper()
	repo := &mockQuizRepo{}
	state := session.NewState("u1", "s1")
	f := NewFlow(retrieval.NewKeywordRetriever(chunks), repo, state)
	return f, repo
}

var bioChunks = []string{
	"Photosynthesis converts light into chemical energy.",
	"Photosynthesis takes place in the chloroplast.",
	"Osmosis moves water across a membrane.",
}

func TestPrepare(t *testing.T) {
	f, repo := newTestFlow(t, bioChunks)

	res := f.Prepare(context.Background(), "photosynthesis", 3)
	if res.Status != session.StatusSuccess {
		t.Fatalf("status = %q: %s", res.Status, res.ErrorMessage)
	}
	if res.TotalQuestions != 2 {
		t.Errorf("total questions = %d, want 2 matching chunks", res.TotalQuestions)
	}
	if res.QuizID != 7 || repo.started != 1 {
		t.Errorf("quiz id = %d (starts %d), want 7 (1)", res.QuizID, repo.started)
	}
}

func TestPrepare_NoMaterial(t *testing.T) {
	f, _ := newTestFlow(t, bioChunks)
	res := f.Prepare(context.Background(), "quantum chromodynamics", 3)
	if res.Status != session.StatusError {
		t.Fatalf("status = %q, want error", res.Status)
	}
}

func TestStepBeforePrepare(t *testing.T) {
	f, _ := newTestFlow(t, bioChunks)
	if res := f.Step(); res.Status != session.StatusError {
		t.Errorf("step status = %q, want error before prepare", res.Status)
	}
	if res := f.Advance(context.Background(), true, ""); res.Status != session.StatusError {
		t.Errorf("advance status = %q, want error before prepare", res.Status)
	}
	if res := f.Reveal(); res.Status != session.StatusError {
		t.Errorf("reveal status = %q, want error before prepare", res.Status)
	}
}

func TestStepHintTruncation(t *testing.T) {
	long := strings.Repeat("photosynthesis ", 100)
	f, _ := newTestFlow(t, []string{long})
	f.Prepare(context.Background(), "photosynthesis", 1)

	res := f.Step()
	if res.Status != session.StatusSuccess {
		t.Fatalf("status = %q", res.Status)
	}
	if got := len([]rune(res.HintSnippet)); got != 400 {
		t.Errorf("hint length = %d, want 400", got)
	}

	// Reveal returns the whole snippet.
	rev := f.Reveal()
	if len(rev.Context) <= len(res.HintSnippet) {
		t.Error("expected reveal to exceed the hint")
	}
}

func TestAdvanceFlow(t *testing.T) {
	f, repo := newTestFlow(t, bioChunks)
	f.Prepare(context.Background(), "photosynthesis", 2)
	ctx := context.Background()

	// Wrong answer: stay on question 1.
	res := f.Advance(ctx, false, "photosynthesis")
	if res.Done {
		t.Fatal("done after one wrong answer")
	}
	if res.MistakesOnCurrent != 1 || res.TotalMistakes != 1 {
		t.Errorf("mistakes = %d/%d, want 1/1", res.MistakesOnCurrent, res.TotalMistakes)
	}
	if res.NextQuestionNumber != 1 {
		t.Errorf("next question = %d, want 1 (stay on failure)", res.NextQuestionNumber)
	}

	// Correct: move on, mistake counter resets.
	res = f.Advance(ctx, true, "photosynthesis")
	if res.NextQuestionNumber != 2 || res.MistakesOnCurrent != 0 {
		t.Errorf("next = %d, mistakes = %d, want 2, 0", res.NextQuestionNumber, res.MistakesOnCurrent)
	}
	if res.TotalCorrect != 1 {
		t.Errorf("total correct = %d, want 1", res.TotalCorrect)
	}

	// Final correct answer completes the quiz.
	res = f.Advance(ctx, true, "photosynthesis")
	if !res.Done || !f.Done() {
		t.Fatal("expected quiz to be done")
	}
	if repo.completed != 1 {
		t.Errorf("complete calls = %d, want 1", repo.completed)
	}
	if len(repo.details) != 2 {
		t.Fatalf("persisted details = %d, want 2", len(repo.details))
	}
	// First question took two attempts, the second only one.
	if repo.details[0].Attempts != 2 {
		t.Errorf("first question attempts = %d, want 2", repo.details[0].Attempts)
	}
	if repo.details[1].Attempts != 1 {
		t.Errorf("second question attempts = %d, want 1", repo.details[1].Attempts)
	}
}
