package difficulty

import "testing"

// recs builds a newest-first record list from scores, all with zero hints.
func recs(scores ...float64) []PerformanceRecord {
	out := make([]PerformanceRecord, len(scores))
	for i, s := range scores {
		out[i] = PerformanceRecord{Score: s}
	}
	return out
}

func TestAdjust_InsufficientData(t *testing.T) {
	for _, n := range []int{0, 1} {
		records := recs()
		if n == 1 {
			records = recs(0.2)
		}
		adj := Adjust(3, records, DefaultComplexity)
		if adj.Type != AdjustMaintain {
			t.Errorf("n=%d: type = %s, want maintain", n, adj.Type)
		}
		if adj.NewLevel != 3 {
			t.Errorf("n=%d: new level = %d, want 3", n, adj.NewLevel)
		}
		if adj.Reason != "insufficient data for adjustment" {
			t.Errorf("n=%d: reason = %q", n, adj.Reason)
		}
	}
}

func TestAdjust_Increase(t *testing.T) {
	adj := Adjust(3, recs(0.90, 0.88, 0.85), DefaultComplexity)
	if adj.Type != AdjustIncrease {
		t.Fatalf("type = %s, want increase", adj.Type)
	}
	if adj.NewLevel != 4 {
		t.Errorf("new level = %d, want 4", adj.NewLevel)
	}
	if adj.ScaffoldingRecommended {
		t.Error("scaffolding recommended on an increase")
	}
}

func TestAdjust_HintsBlockIncrease(t *testing.T) {
	records := recs(0.90, 0.90, 0.90)
	records[1].HintsUsed = 1
	adj := Adjust(3, records, DefaultComplexity)
	if adj.Type == AdjustIncrease {
		t.Errorf("type = increase despite hint usage")
	}
}

func TestAdjust_Decrease(t *testing.T) {
	adj := Adjust(3, recs(0.40, 0.35), DefaultComplexity)
	if adj.Type != AdjustDecrease {
		t.Fatalf("type = %s, want decrease", adj.Type)
	}
	if adj.NewLevel != 2 {
		t.Errorf("new level = %d, want 2", adj.NewLevel)
	}
	if !adj.ScaffoldingRecommended {
		t.Error("expected scaffolding recommendation on decrease")
	}
}

func TestAdjust_OptimalZoneMaintains(t *testing.T) {
	adj := Adjust(3, recs(0.70, 0.75, 0.65), DefaultComplexity)
	if adj.Type != AdjustMaintain {
		t.Errorf("type = %s, want maintain", adj.Type)
	}
	if adj.Reason != "performance in acceptable range" {
		t.Errorf("reason = %q", adj.Reason)
	}
}

func TestAdjust_IncreaseCheckedBeforeDecrease(t *testing.T) {
	// Three high scores qualify for increase even when older records are
	// low; the decrease rule never runs.
	records := recs(0.95, 0.95, 0.95, 0.10, 0.10)
	adj := Adjust(3, records, DefaultComplexity)
	if adj.Type != AdjustIncrease {
		t.Errorf("type = %s, want increase", adj.Type)
	}
}

func TestAdjust_SaturationAtCeiling(t *testing.T) {
	adj := Adjust(6, recs(0.95, 0.95, 0.95), DefaultComplexity)
	if adj.Type != AdjustIncrease {
		t.Errorf("type = %s, want increase (attempted type reported)", adj.Type)
	}
	if adj.NewLevel != 6 {
		t.Errorf("new level = %d, want 6", adj.NewLevel)
	}
	if adj.PreviousLevel != adj.NewLevel {
		t.Error("saturation should leave the level unchanged")
	}
}

func TestAdjust_SaturationAtFloor(t *testing.T) {
	adj := Adjust(1, recs(0.10, 0.10), DefaultComplexity)
	if adj.Type != AdjustDecrease {
		t.Errorf("type = %s, want decrease (attempted type reported)", adj.Type)
	}
	if adj.NewLevel != 1 {
		t.Errorf("new level = %d, want 1", adj.NewLevel)
	}
	if adj.ScaffoldingRecommended {
		t.Error("no scaffolding when the level could not decrease")
	}
}

func TestAdjust_NewLevelAlwaysInRange(t *testing.T) {
	windows := [][]PerformanceRecord{
		recs(0.95, 0.95, 0.95),
		recs(0.10, 0.10),
		recs(0.70, 0.70, 0.70),
		recs(),
	}
	for level := -2; level <= 9; level++ {
		for _, w := range windows {
			adj := Adjust(level, w, DefaultComplexity)
			if adj.NewLevel < MinLevel || adj.NewLevel > MaxLevel {
				t.Errorf("level %d: new level %d out of range", level, adj.NewLevel)
			}
		}
	}
}

func TestThresholds(t *testing.T) {
	tests := []struct {
		complexity   int
		wantIncrease float64
		wantDecrease float64
	}{
		{3, 0.85, 0.50},
		{5, 0.95, 0.50 * 5.0 / 3.0}, // increase clamped at 0.95
		{1, 0.85 / 3.0, 0.30},       // decrease clamped at 0.30
		{0, 0.85, 0.50},             // invalid complexity falls back to default
		{9, 0.85, 0.50},
	}
	for _, tt := range tests {
		inc, dec := Thresholds(tt.complexity)
		if !closeTo(inc, tt.wantIncrease) {
			t.Errorf("complexity %d: increase = %f, want %f", tt.complexity, inc, tt.wantIncrease)
		}
		if !closeTo(dec, tt.wantDecrease) {
			t.Errorf("complexity %d: decrease = %f, want %f", tt.complexity, dec, tt.wantDecrease)
		}
	}
}

func TestAdjust_HighComplexityRaisesBar(t *testing.T) {
	// 0.90 clears the default threshold but not the complexity-5 one (0.95).
	records := recs(0.90, 0.90, 0.90)
	if adj := Adjust(3, records, 3); adj.Type != AdjustIncrease {
		t.Errorf("complexity 3: type = %s, want increase", adj.Type)
	}
	if adj := Adjust(3, records, 5); adj.Type != AdjustMaintain {
		t.Errorf("complexity 5: type = %s, want maintain", adj.Type)
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
