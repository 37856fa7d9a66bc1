package difficulty

import "testing"

func TestClampLevel(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 1}, {0, 1}, {1, 1}, {3, 3}, {6, 6}, {7, 6}, {100, 6},
	}
	for _, tt := range tests {
		if got := ClampLevel(tt.in); got != tt.want {
			t.Errorf("ClampLevel(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLevelFor(t *testing.T) {
	if got := LevelFor(1).Name; got != "Foundation" {
		t.Errorf("level 1 name = %q, want Foundation", got)
	}
	if got := LevelFor(6).Name; got != "Mastery" {
		t.Errorf("level 6 name = %q, want Mastery", got)
	}
	// Out-of-range lookups clamp instead of returning a zero value.
	if got := LevelFor(99).Name; got != "Mastery" {
		t.Errorf("level 99 name = %q, want Mastery", got)
	}
	if got := LevelFor(0).Name; got != "Foundation" {
		t.Errorf("level 0 name = %q, want Foundation", got)
	}
}

func TestLevelTable(t *testing.T) {
	for n := MinLevel; n <= MaxLevel; n++ {
		lv := LevelFor(n)
		if lv.Level != n {
			t.Errorf("level %d: config reports level %d", n, lv.Level)
		}
		if len(lv.QuestionTypes) == 0 {
			t.Errorf("level %d: no question types", n)
		}
		if lv.TimePressure <= 0 {
			t.Errorf("level %d: time pressure %f", n, lv.TimePressure)
		}
	}
	// Hint allowance shrinks as levels rise and vanishes from level 4.
	if LevelFor(1).HintAllowance != 3 || LevelFor(3).HintAllowance != 1 {
		t.Error("unexpected hint allowances at low levels")
	}
	for n := 4; n <= MaxLevel; n++ {
		if LevelFor(n).HintAllowance != 0 {
			t.Errorf("level %d: hint allowance = %d, want 0", n, LevelFor(n).HintAllowance)
		}
	}
}
