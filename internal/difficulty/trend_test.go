package difficulty

import "testing"

func TestAnalyzeTrend_Empty(t *testing.T) {
	tr := AnalyzeTrend(nil, DefaultTrendWindow)
	if tr.WindowSize != 0 {
		t.Errorf("window size = %d, want 0", tr.WindowSize)
	}
	if tr.ScoreTrend != TrendStable || tr.TimeTrend != TimeStable {
		t.Errorf("trends = %s/%s, want stable/stable", tr.ScoreTrend, tr.TimeTrend)
	}
	if tr.AvgScore != 0 || tr.OptimalZoneRatio != 0 {
		t.Error("expected zero aggregates for empty input")
	}
}

func TestAnalyzeTrend_WindowLimit(t *testing.T) {
	records := recs(1.0, 1.0, 1.0, 0.0, 0.0, 0.0, 0.0)
	tr := AnalyzeTrend(records, 3)
	if tr.WindowSize != 3 {
		t.Errorf("window size = %d, want 3", tr.WindowSize)
	}
	if tr.AvgScore != 1.0 {
		t.Errorf("avg score = %f, want 1.0 (older records must be ignored)", tr.AvgScore)
	}
}

func TestAnalyzeTrend_ScoreDirection(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		// Newest-first input: the direction reports the back half of the
		// window against the front half.
		{"improving", []float64{0.40, 0.40, 0.90, 0.90}, TrendImproving},
		{"declining", []float64{0.90, 0.90, 0.50, 0.50}, TrendDeclining},
		{"stable", []float64{0.70, 0.71, 0.70, 0.69}, TrendStable},
		{"single", []float64{0.80}, TrendStable},
		{"odd window declining", []float64{0.90, 0.90, 0.50, 0.50, 0.50}, TrendDeclining},
	}
	for _, tt := range tests {
		tr := AnalyzeTrend(recs(tt.scores...), DefaultTrendWindow)
		if tr.ScoreTrend != tt.want {
			t.Errorf("%s: score trend = %s, want %s", tt.name, tr.ScoreTrend, tt.want)
		}
	}
}

func TestAnalyzeTrend_TimeDirection(t *testing.T) {
	withTimes := func(ms ...int) []PerformanceRecord {
		out := make([]PerformanceRecord, len(ms))
		for i, m := range ms {
			out[i] = PerformanceRecord{Score: 0.7, ResponseTimeMs: m}
		}
		return out
	}

	tests := []struct {
		name  string
		times []int
		want  string
	}{
		{"faster", []int{12000, 12000, 8000, 8000}, TimeFaster},
		{"slower", []int{5000, 5000, 10000, 10000}, TimeSlower},
		{"stable", []int{10000, 10500, 10000, 9800}, TimeStable},
		{"missing times", []int{5000, 0, 10000, 10000}, TimeStable},
	}
	for _, tt := range tests {
		tr := AnalyzeTrend(withTimes(tt.times...), DefaultTrendWindow)
		if tr.TimeTrend != tt.want {
			t.Errorf("%s: time trend = %s, want %s", tt.name, tr.TimeTrend, tt.want)
		}
	}
}

func TestAnalyzeTrend_Streaks(t *testing.T) {
	tests := []struct {
		name          string
		scores        []float64
		wantCorrect   int
		wantIncorrect int
	}{
		{"all correct", []float64{0.9, 0.8, 0.7}, 3, 0},
		{"all incorrect", []float64{0.3, 0.2, 0.1}, 0, 3},
		{"correct run then break", []float64{0.9, 0.9, 0.2, 0.9}, 2, 1},
		{"incorrect run then break", []float64{0.3, 0.3, 0.9, 0.3}, 1, 2},
		{"boundary counts as correct", []float64{0.60, 0.60}, 2, 0},
	}
	for _, tt := range tests {
		tr := AnalyzeTrend(recs(tt.scores...), DefaultTrendWindow)
		if tr.ConsecutiveCorrect != tt.wantCorrect || tr.ConsecutiveIncorrect != tt.wantIncorrect {
			t.Errorf("%s: streaks = %d/%d, want %d/%d", tt.name,
				tr.ConsecutiveCorrect, tr.ConsecutiveIncorrect, tt.wantCorrect, tt.wantIncorrect)
		}
	}
}

func TestAnalyzeTrend_OptimalZoneRatio(t *testing.T) {
	tr := AnalyzeTrend(recs(0.70, 0.90, 0.60, 0.50), DefaultTrendWindow)
	if !closeTo(tr.OptimalZoneRatio, 0.5) {
		t.Errorf("optimal zone ratio = %f, want 0.5", tr.OptimalZoneRatio)
	}
}

func TestAnalyzeTrend_Averages(t *testing.T) {
	records := recs(0.80, 0.60)
	records[0].HintsUsed = 2
	records[0].ResponseTimeMs = 4000
	records[1].ResponseTimeMs = 6000
	tr := AnalyzeTrend(records, DefaultTrendWindow)
	if !closeTo(tr.AvgScore, 0.70) {
		t.Errorf("avg score = %f, want 0.70", tr.AvgScore)
	}
	if tr.AvgResponseTimeMs != 5000 {
		t.Errorf("avg response time = %d, want 5000", tr.AvgResponseTimeMs)
	}
	if !closeTo(tr.AvgHintsUsed, 1.0) {
		t.Errorf("avg hints = %f, want 1.0", tr.AvgHintsUsed)
	}
}
