package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestPerformanceAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		_, err := repo.AppendPerformance(ctx, PerformanceEventData{
			UserID:          "u1",
			SessionID:       "s1",
			QuestionNumber:  i,
			Score:           float64(i) / 10,
			DifficultyLevel: 3,
			ConceptTested:   "photosynthesis",
			QuestionType:    "definition",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.RecentPerformance(ctx, "u1", "s1", 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	// Newest first.
	if records[0].QuestionNumber != 4 || records[2].QuestionNumber != 2 {
		t.Errorf("unexpected order: %d, %d, %d",
			records[0].QuestionNumber, records[1].QuestionNumber, records[2].QuestionNumber)
	}

	// Other sessions stay invisible.
	records, err = repo.RecentPerformance(ctx, "u1", "other", 10)
	if err != nil {
		t.Fatalf("recent other session: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len = %d, want 0 for unknown session", len(records))
	}
}

func TestPerformanceByConcept(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	concepts := []string{"osmosis", "photosynthesis", "osmosis"}
	for i, c := range concepts {
		_, err := repo.AppendPerformance(ctx, PerformanceEventData{
			UserID:          "u1",
			SessionID:       "s1",
			QuestionNumber:  i + 1,
			Score:           0.5,
			DifficultyLevel: 3,
			ConceptTested:   c,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.PerformanceByConcept(ctx, "u1", "osmosis", 10)
	if err != nil {
		t.Fatalf("by concept: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	for _, r := range records {
		if r.ConceptTested != "osmosis" {
			t.Errorf("concept = %q, want osmosis", r.ConceptTested)
		}
	}
}

func TestAdjustmentHistoryAndLastLevel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// No adjustment yet.
	_, ok, err := repo.LastDifficultyLevel(ctx, "u1", "")
	if err != nil {
		t.Fatalf("last level (empty): %v", err)
	}
	if ok {
		t.Fatal("expected no recorded level")
	}

	levels := []int{4, 3, 2}
	for i, lvl := range levels {
		err := repo.AppendAdjustment(ctx, AdjustmentEventData{
			UserID:         "u1",
			SessionID:      "s1",
			PreviousLevel:  lvl + 1,
			NewLevel:       lvl,
			AdjustmentType: "decrease",
			TriggeredBy:    "answer",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	lvl, ok, err := repo.LastDifficultyLevel(ctx, "u1", "s1")
	if err != nil {
		t.Fatalf("last level: %v", err)
	}
	if !ok || lvl != 2 {
		t.Errorf("last level = %d (ok=%v), want 2", lvl, ok)
	}

	// Cross-session lookup with empty session ID.
	lvl, ok, err = repo.LastDifficultyLevel(ctx, "u1", "")
	if err != nil {
		t.Fatalf("last level all sessions: %v", err)
	}
	if !ok || lvl != 2 {
		t.Errorf("last level all sessions = %d (ok=%v), want 2", lvl, ok)
	}

	history, err := repo.AdjustmentHistory(ctx, "u1", "s1", 2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history len = %d, want 2", len(history))
	}
	if history[0].NewLevel != 2 {
		t.Errorf("newest history level = %d, want 2", history[0].NewLevel)
	}
}

func TestMasteryLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ConceptRepo()
	ctx := context.Background()

	// Unknown concept.
	m, err := repo.Mastery(ctx, "u1", "mitosis")
	if err != nil {
		t.Fatalf("mastery (empty): %v", err)
	}
	if m != nil {
		t.Fatal("expected nil mastery for unseen concept")
	}

	// First answer, correct.
	if err := repo.UpdateMastery(ctx, "u1", "mitosis", true, "declarative"); err != nil {
		t.Fatalf("update 1: %v", err)
	}
	// Second answer, incorrect. Empty knowledge type must not clobber.
	if err := repo.UpdateMastery(ctx, "u1", "mitosis", false, ""); err != nil {
		t.Fatalf("update 2: %v", err)
	}

	m, err = repo.Mastery(ctx, "u1", "mitosis")
	if err != nil {
		t.Fatalf("mastery: %v", err)
	}
	if m == nil {
		t.Fatal("expected mastery row")
	}
	if m.TimesSeen != 2 || m.TimesCorrect != 1 {
		t.Errorf("seen/correct = %d/%d, want 2/1", m.TimesSeen, m.TimesCorrect)
	}
	if m.MasteryLevel != 0.5 {
		t.Errorf("mastery = %f, want 0.5", m.MasteryLevel)
	}
	if m.KnowledgeType != "declarative" {
		t.Errorf("knowledge type = %q, want declarative", m.KnowledgeType)
	}
}

func TestComplexityDefaultsForUnknownConcept(t *testing.T) {
	s := openTestStore(t)
	repo := s.ConceptRepo()
	ctx := context.Background()

	c, err := repo.Complexity(ctx, "u1", "never-seen")
	if err != nil {
		t.Fatalf("complexity: %v", err)
	}
	if c != 3 {
		t.Errorf("complexity = %d, want default 3", c)
	}
}

func TestRecordDifficultyAchievement(t *testing.T) {
	s := openTestStore(t)
	repo := s.ConceptRepo()
	ctx := context.Background()

	// No-op before the concept exists.
	if err := repo.RecordDifficultyAchievement(ctx, "u1", "mitosis", 4, true); err != nil {
		t.Fatalf("achievement on unseen concept: %v", err)
	}

	if err := repo.UpdateMastery(ctx, "u1", "mitosis", true, ""); err != nil {
		t.Fatalf("update mastery: %v", err)
	}
	if err := repo.RecordDifficultyAchievement(ctx, "u1", "mitosis", 4, true); err != nil {
		t.Fatalf("achievement: %v", err)
	}

	m, err := repo.Mastery(ctx, "u1", "mitosis")
	if err != nil {
		t.Fatalf("mastery: %v", err)
	}
	if m.MaxDifficulty != 4 {
		t.Errorf("max difficulty = %d, want 4", m.MaxDifficulty)
	}
	if m.AvgDifficulty != 4.0 {
		t.Errorf("avg difficulty = %f, want 4.0", m.AvgDifficulty)
	}

	// An incorrect answer never raises the max.
	if err := repo.UpdateMastery(ctx, "u1", "mitosis", false, ""); err != nil {
		t.Fatalf("update mastery 2: %v", err)
	}
	if err := repo.RecordDifficultyAchievement(ctx, "u1", "mitosis", 6, false); err != nil {
		t.Fatalf("achievement 2: %v", err)
	}
	m, _ = repo.Mastery(ctx, "u1", "mitosis")
	if m.MaxDifficulty != 4 {
		t.Errorf("max difficulty after incorrect = %d, want 4", m.MaxDifficulty)
	}
	if m.AvgDifficulty != 5.0 {
		t.Errorf("avg difficulty = %f, want 5.0", m.AvgDifficulty)
	}
}

func TestWeakAndAllMastery(t *testing.T) {
	s := openTestStore(t)
	repo := s.ConceptRepo()
	ctx := context.Background()

	// strong: 2/2, weak: 0/2, middling: 1/2.
	seed := map[string][]bool{
		"strong":   {true, true},
		"weak":     {false, false},
		"middling": {true, false},
	}
	for concept, answers := range seed {
		for _, correct := range answers {
			if err := repo.UpdateMastery(ctx, "u1", concept, correct, ""); err != nil {
				t.Fatalf("seed %s: %v", concept, err)
			}
		}
	}

	weak, err := repo.WeakConcepts(ctx, "u1", 0.5)
	if err != nil {
		t.Fatalf("weak: %v", err)
	}
	if len(weak) != 1 || weak[0].ConceptName != "weak" {
		t.Errorf("weak concepts = %v", weak)
	}

	all, err := repo.AllMastery(ctx, "u1", 0.0)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all len = %d, want 3", len(all))
	}
	// Strongest first.
	if all[0].ConceptName != "strong" {
		t.Errorf("first concept = %q, want strong", all[0].ConceptName)
	}
}

func TestKnowledgeGaps(t *testing.T) {
	s := openTestStore(t)
	repo := s.ConceptRepo()
	ctx := context.Background()

	id, err := repo.AddGap(ctx, "u1", "osmosis", "weak", []string{"diffusion"})
	if err != nil {
		t.Fatalf("add gap: %v", err)
	}
	if _, err := repo.AddGap(ctx, "u1", "mitosis", "missing", nil); err != nil {
		t.Fatalf("add gap 2: %v", err)
	}

	gaps, err := repo.ActiveGaps(ctx, "u1")
	if err != nil {
		t.Fatalf("active gaps: %v", err)
	}
	if len(gaps) != 2 {
		t.Fatalf("gaps len = %d, want 2", len(gaps))
	}

	if err := repo.ResolveGap(ctx, id); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	gaps, err = repo.ActiveGaps(ctx, "u1")
	if err != nil {
		t.Fatalf("active gaps after resolve: %v", err)
	}
	if len(gaps) != 1 || gaps[0].ConceptName != "mitosis" {
		t.Errorf("gaps after resolve = %v", gaps)
	}
}

func TestQuizLifecycleAndStats(t *testing.T) {
	s := openTestStore(t)
	quizzes := s.QuizRepo()
	concepts := s.ConceptRepo()
	ctx := context.Background()

	id, err := quizzes.Start(ctx, "u1", "s1", "biology", 5)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	details := []QuestionDetail{
		{Number: 1, Concept: "mitosis", Score: 1.0, Correct: true, DifficultyLevel: 3},
		{Number: 2, Concept: "osmosis", Score: 0.2, Correct: false, DifficultyLevel: 3},
	}
	if err := quizzes.UpdateProgress(ctx, id, 1, 1, details); err != nil {
		t.Fatalf("update progress: %v", err)
	}
	if err := quizzes.Complete(ctx, id); err != nil {
		t.Fatalf("complete: %v", err)
	}

	history, err := quizzes.History(ctx, "u1", "", 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history len = %d, want 1", len(history))
	}
	q := history[0]
	if q.Topic != "biology" || q.CorrectAnswers != 1 || q.TotalMistakes != 1 {
		t.Errorf("unexpected summary: %+v", q)
	}
	if q.CompletedAt.IsZero() {
		t.Error("expected completed_at to be set")
	}
	if len(q.Details) != 2 {
		t.Errorf("details len = %d, want 2", len(q.Details))
	}

	// Topic filter.
	history, err = quizzes.History(ctx, "u1", "chemistry", 10)
	if err != nil {
		t.Fatalf("history filtered: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("filtered history len = %d, want 0", len(history))
	}

	if err := concepts.UpdateMastery(ctx, "u1", "mitosis", true, ""); err != nil {
		t.Fatalf("update mastery: %v", err)
	}

	stats, err := quizzes.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalQuizzes != 1 || stats.TotalQuestions != 5 || stats.TotalCorrect != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.ConceptsSeen != 1 || stats.MasteredCount != 1 {
		t.Errorf("unexpected mastery stats: %+v", stats)
	}
}

func TestSnapshotSaveLatestPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.LatestForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &SessionSnapshot{
			UserID:    "u1",
			SessionID: "s1",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      map[string]any{"level": float64(3)},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err = repo.LatestForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil || snap.Sequence != 7 {
		t.Fatalf("latest = %+v, want sequence 7", snap)
	}

	if err := repo.Prune(ctx, "u1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}
	count, err := s.Client().SessionSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err = repo.LatestForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestLLMRequestEventsAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini-2.0-flash", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 40, LatencyMs: 200, Success: true},
		{Provider: "gemini-2.0-flash", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 120, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "gemini-2.0-flash", Model: "gemini-2.0-flash", Purpose: "explanation", InputTokens: 50, OutputTokens: 20, LatencyMs: 100, Success: false, ErrorMessage: "timeout"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent, err := repo.RecentLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent count = %d, want 2", len(recent))
	}
	// Newest first.
	if recent[0].Purpose != "explanation" || recent[0].Success || recent[0].ErrorMessage != "timeout" {
		t.Errorf("newest = %+v, want the explanation failure", recent[0])
	}
	if recent[0].Sequence <= recent[1].Sequence {
		t.Errorf("order = %d, %d, want descending", recent[0].Sequence, recent[1].Sequence)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purpose groups = %d, want 2", len(byPurpose))
	}
	// Heaviest purpose first.
	if byPurpose[0].Purpose != "question-gen" || byPurpose[0].Calls != 2 {
		t.Errorf("top purpose = %+v, want question-gen with 2 calls", byPurpose[0])
	}
	if byPurpose[0].InputTokens != 220 || byPurpose[0].OutputTokens != 100 {
		t.Errorf("question-gen tokens = %d/%d, want 220/100", byPurpose[0].InputTokens, byPurpose[0].OutputTokens)
	}
	if byPurpose[0].AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", byPurpose[0].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "gemini-2.0-flash" || byModel[0].Calls != 3 {
		t.Errorf("model usage = %+v, want one gemini-2.0-flash group with 3 calls", byModel)
	}
}
