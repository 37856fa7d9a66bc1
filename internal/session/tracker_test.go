package session

import (
	"context"
	"testing"

	"github.com/rahulsv/studyloop/internal/difficulty"
	"github.com/rahulsv/studyloop/internal/scaffolding"
	"github.com/rahulsv/studyloop/internal/store"
)

// mockEventRepo records appended events in memory.
type mockEventRepo struct {
	performance []store.PerformanceEventData
	adjustments []store.AdjustmentEventData
	llm         []store.LLMRequestEventData
	lastLevel   int
	hasLast     bool
}

func (m *mockEventRepo) AppendPerformance(_ context.Context, data store.PerformanceEventData) (int64, error) {
	m.performance = append(m.performance, data)
	return int64(len(m.performance)), nil
}

func (m *mockEventRepo) RecentPerformance(context.Context, string, string, int) ([]store.PerformanceEventData, error) {
	return nil, nil
}

func (m *mockEventRepo) PerformanceByConcept(context.Context, string, string, int) ([]store.PerformanceEventData, error) {
	return nil, nil
}

func (m *mockEventRepo) AppendAdjustment(_ context.Context, data store.AdjustmentEventData) error {
	m.adjustments = append(m.adjustments, data)
	return nil
}

func (m *mockEventRepo) LastDifficultyLevel(context.Context, string, string) (int, bool, error) {
	return m.lastLevel, m.hasLast, nil
}

func (m *mockEventRepo) AdjustmentHistory(context.Context, string, string, int) ([]store.AdjustmentEventData, error) {
	return m.adjustments, nil
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	m.llm = append(m.llm, data)
	return nil
}

func (m *mockEventRepo) RecentLLMRequests(context.Context, int) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByModel(context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

// mockConceptRepo tracks mastery updates and serves fixed complexities.
type mockConceptRepo struct {
	complexities  map[string]int
	masteryCalls  []string
	achievements  []int
	struggleAreas map[string]string
}

func newMockConceptRepo() *mockConceptRepo {
	return &mockConceptRepo{
		complexities:  make(map[string]int),
		struggleAreas: make(map[string]string),
	}
}

func (m *mockConceptRepo) UpdateMastery(_ context.Context, _, concept string, correct bool, _ string) error {
	suffix := "/wrong"
	if correct {
		suffix = "/right"
	}
	m.masteryCalls = append(m.masteryCalls, concept+suffix)
	return nil
}

func (m *mockConceptRepo) RecordDifficultyAchievement(_ context.Context, _, _ string, level int, _ bool) error {
	m.achievements = append(m.achievements, level)
	return nil
}

func (m *mockConceptRepo) SetStruggleArea(_ context.Context, _, concept, area string) error {
	m.struggleAreas[concept] = area
	return nil
}

func (m *mockConceptRepo) Mastery(context.Context, string, string) (*store.ConceptMastery, error) {
	return nil, nil
}

func (m *mockConceptRepo) Complexity(_ context.Context, _, concept string) (int, error) {
	if c, ok := m.complexities[concept]; ok {
		return c, nil
	}
	return 3, nil
}

func (m *mockConceptRepo) AllMastery(context.Context, string, float64) ([]store.ConceptMastery, error) {
	return nil, nil
}

func (m *mockConceptRepo) WeakConcepts(context.Context, string, float64) ([]store.ConceptMastery, error) {
	return nil, nil
}

func (m *mockConceptRepo) AddGap(context.Context, string, string, string, []string) (int, error) {
	return 0, nil
}

func (m *mockConceptRepo) ResolveGap(context.Context, int) error { return nil }

func (m *mockConceptRepo) ActiveGaps(context.Context, string) ([]store.Gap, error) {
	return nil, nil
}

func newTestTracker() (*Tracker, *mockEventRepo, *mockConceptRepo) {
	events := &mockEventRepo{}
	concepts := newMockConceptRepo()
	return NewTracker(events, concepts), events, concepts
}

func record(t *testing.T, tr *Tracker, state *State, score float64) RecordResult {
	t.Helper()
	return tr.RecordPerformance(context.Background(), state, RecordInput{
		Score:        score,
		Concept:      "photosynthesis",
		QuestionType: "definition",
	})
}

func TestRecordPerformance_DecreaseActivatesScaffolding(t *testing.T) {
	tr, _, _ := newTestTracker()
	state := NewState("u1", "s1")

	record(t, tr, state, 0.40)
	res := record(t, tr, state, 0.35)

	if res.Adjustment.Type != difficulty.AdjustDecrease {
		t.Fatalf("adjustment = %s, want decrease", res.Adjustment.Type)
	}
	if state.Level != 2 {
		t.Errorf("level = %d, want 2", state.Level)
	}
	if !state.ScaffoldingActive {
		t.Error("expected scaffolding to activate")
	}
	if state.ConsecutiveIncorrect != 2 || state.ConsecutiveCorrect != 0 {
		t.Errorf("streaks = %d/%d, want 0/2", state.ConsecutiveCorrect, state.ConsecutiveIncorrect)
	}
}

func TestRecordPerformance_IncreaseAfterThreeStrong(t *testing.T) {
	tr, events, _ := newTestTracker()
	state := NewState("u1", "s1")

	record(t, tr, state, 0.90)
	record(t, tr, state, 0.90)
	res := record(t, tr, state, 0.90)

	if res.Adjustment.Type != difficulty.AdjustIncrease {
		t.Fatalf("adjustment = %s, want increase", res.Adjustment.Type)
	}
	if state.Level != 4 {
		t.Errorf("level = %d, want 4", state.Level)
	}
	if state.ScaffoldingActive {
		t.Error("scaffolding active after an increase")
	}

	// Three performance events, exactly one non-maintain adjustment.
	if len(events.performance) != 3 {
		t.Errorf("performance events = %d, want 3", len(events.performance))
	}
	if len(events.adjustments) != 1 {
		t.Errorf("adjustment events = %d, want 1", len(events.adjustments))
	}
	if events.adjustments[0].AdjustmentType != "increase" {
		t.Errorf("persisted type = %q, want increase", events.adjustments[0].AdjustmentType)
	}
}

func TestRecordPerformance_OptimalZoneMaintains(t *testing.T) {
	tr, events, _ := newTestTracker()
	state := NewState("u1", "s1")

	record(t, tr, state, 0.70)
	res := record(t, tr, state, 0.75)

	if res.Adjustment.Type != difficulty.AdjustMaintain {
		t.Fatalf("adjustment = %s, want maintain", res.Adjustment.Type)
	}
	if !res.InOptimalZone {
		t.Error("expected optimal zone flag")
	}
	if state.Level != 3 {
		t.Errorf("level = %d, want 3", state.Level)
	}
	if len(events.adjustments) != 0 {
		t.Errorf("maintain decisions persisted: %d", len(events.adjustments))
	}
}

func TestRecordPerformance_UpdatesMasteryAndHints(t *testing.T) {
	tr, _, concepts := newTestTracker()
	state := NewState("u1", "s1")
	state.HintsUsed = 2

	record(t, tr, state, 0.80)
	record(t, tr, state, 0.30)

	want := []string{"photosynthesis/right", "photosynthesis/wrong"}
	if len(concepts.masteryCalls) != 2 ||
		concepts.masteryCalls[0] != want[0] || concepts.masteryCalls[1] != want[1] {
		t.Errorf("mastery calls = %v, want %v", concepts.masteryCalls, want)
	}
	if len(concepts.achievements) != 2 {
		t.Errorf("achievement calls = %d, want 2", len(concepts.achievements))
	}
	if state.HintsUsed != 0 {
		t.Errorf("hints used = %d, want 0 after recording", state.HintsUsed)
	}
}

func TestRecordPerformance_OneMasteryUpsertPerAnswer(t *testing.T) {
	tr, _, concepts := newTestTracker()
	state := NewState("u1", "s1")

	scores := []float64{0.90, 0.30, 0.70, 0.80, 0.20}
	for _, s := range scores {
		record(t, tr, state, s)
	}

	// Each answer upserts the concept exactly once; times_seen must grow
	// by one per answer, never two.
	if len(concepts.masteryCalls) != len(scores) {
		t.Errorf("mastery upserts = %d, want %d (one per answer)",
			len(concepts.masteryCalls), len(scores))
	}
	if len(concepts.achievements) != len(scores) {
		t.Errorf("achievement updates = %d, want %d (one per answer)",
			len(concepts.achievements), len(scores))
	}
}

func TestRecordPerformance_ComplexityRaisesBar(t *testing.T) {
	tr, _, concepts := newTestTracker()
	concepts.complexities["photosynthesis"] = 5
	state := NewState("u1", "s1")

	// 0.90 clears the default bar but not the complexity-5 bar of 0.95.
	record(t, tr, state, 0.90)
	record(t, tr, state, 0.90)
	res := record(t, tr, state, 0.90)

	if res.Adjustment.Type != difficulty.AdjustMaintain {
		t.Errorf("adjustment = %s, want maintain at complexity 5", res.Adjustment.Type)
	}
	if state.Level != 3 {
		t.Errorf("level = %d, want 3", state.Level)
	}
}

func TestRecordPerformance_WithoutRepos(t *testing.T) {
	tr := NewTracker(nil, nil)
	state := NewState("u1", "s1")

	res := record(t, tr, state, 0.40)
	if res.Status != StatusSuccess {
		t.Fatalf("status = %q, want success without repos", res.Status)
	}
	if len(state.History) != 1 {
		t.Errorf("history len = %d, want 1", len(state.History))
	}
}

func TestSetLevel(t *testing.T) {
	tr, events, _ := newTestTracker()
	state := NewState("u1", "s1")
	state.HintsUsed = 1

	res := tr.SetLevel(context.Background(), state, 5)
	if res.PreviousLevel != 3 || res.NewLevel != 5 {
		t.Errorf("levels = %d -> %d, want 3 -> 5", res.PreviousLevel, res.NewLevel)
	}
	if res.LevelName != "Synthesis" {
		t.Errorf("name = %q, want Synthesis", res.LevelName)
	}
	if state.HintsUsed != 0 {
		t.Error("expected hint counter reset")
	}
	if len(events.adjustments) != 1 || events.adjustments[0].TriggeredBy != difficulty.TriggerManual {
		t.Errorf("unexpected adjustment events: %+v", events.adjustments)
	}

	// Out-of-range input clamps.
	res = tr.SetLevel(context.Background(), state, 99)
	if res.NewLevel != 6 {
		t.Errorf("clamped level = %d, want 6", res.NewLevel)
	}
}

func TestLevelResult(t *testing.T) {
	tr, _, _ := newTestTracker()
	state := NewState("u1", "s1")
	state.HintsUsed = 1

	res := tr.Level(state)
	if res.Level != 3 || res.Name != "Application" {
		t.Errorf("level = %d %q, want 3 Application", res.Level, res.Name)
	}
	if res.HintsRemaining != 0 {
		t.Errorf("hints remaining = %d, want 0 (allowance 1, used 1)", res.HintsRemaining)
	}
}

func TestScaffolding_InactiveByDefault(t *testing.T) {
	tr, _, _ := newTestTracker()
	state := NewState("u1", "s1")

	res := tr.Scaffolding(context.Background(), state)
	if res.ScaffoldingActive {
		t.Error("scaffolding should be inactive for a fresh session")
	}
	if res.Message == "" {
		t.Error("expected explanatory message")
	}
}

func TestScaffolding_DetectsAreaFromRecentErrors(t *testing.T) {
	tr, _, concepts := newTestTracker()
	state := NewState("u1", "s1")

	for i := 0; i < 2; i++ {
		tr.RecordPerformance(context.Background(), state, RecordInput{
			Score:        0.30,
			Concept:      "osmosis",
			QuestionType: "comparison",
		})
	}
	if !state.ScaffoldingActive {
		t.Fatal("expected scaffolding active after decrease")
	}

	res := tr.Scaffolding(context.Background(), state)
	if res.StruggleArea != scaffolding.AreaRelationship {
		t.Errorf("struggle area = %q, want relationship", res.StruggleArea)
	}
	if len(res.Hints.HintTemplates) == 0 {
		t.Error("expected hint templates")
	}
	if concepts.struggleAreas["osmosis"] != scaffolding.AreaRelationship {
		t.Errorf("persisted area = %q, want relationship", concepts.struggleAreas["osmosis"])
	}
}

func TestRestoreLevel(t *testing.T) {
	tr, events, _ := newTestTracker()
	events.lastLevel = 5
	events.hasLast = true

	state := NewState("u1", "s2")
	tr.RestoreLevel(context.Background(), state)
	if state.Level != 5 {
		t.Errorf("level = %d, want restored 5", state.Level)
	}
	if len(events.adjustments) != 1 || events.adjustments[0].TriggeredBy != difficulty.TriggerSessionStart {
		t.Errorf("unexpected adjustment events: %+v", events.adjustments)
	}

	// No history: default stands.
	events2 := &mockEventRepo{}
	tr2 := NewTracker(events2, nil)
	state2 := NewState("u1", "s3")
	tr2.RestoreLevel(context.Background(), state2)
	if state2.Level != difficulty.DefaultLevel {
		t.Errorf("level = %d, want default %d", state2.Level, difficulty.DefaultLevel)
	}
}
