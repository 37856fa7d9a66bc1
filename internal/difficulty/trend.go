package difficulty

// DefaultTrendWindow is the default number of records a trend inspects.
const DefaultTrendWindow = 5

// Score trend directions.
const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendDeclining = "declining"
)

// Response time trend directions.
const (
	TimeFaster = "faster"
	TimeStable = "stable"
	TimeSlower = "slower"
)

// Trend aggregates a window of recent answers for difficulty decisions
// and reporting. Derived on demand, never stored.
type Trend struct {
	WindowSize           int     `json:"window_size"`
	AvgScore             float64 `json:"avg_score"`
	ScoreTrend           string  `json:"score_trend"`
	AvgResponseTimeMs    int     `json:"avg_response_time_ms"`
	TimeTrend            string  `json:"time_trend"`
	AvgHintsUsed         float64 `json:"avg_hints_used"`
	ConsecutiveCorrect   int     `json:"consecutive_correct"`
	ConsecutiveIncorrect int     `json:"consecutive_incorrect"`
	OptimalZoneRatio     float64 `json:"optimal_zone_ratio"`
}

// AnalyzeTrend computes aggregate score and time trends over the first
// windowSize records (input is newest-first). Empty input yields an
// all-zero stable trend with WindowSize 0.
func AnalyzeTrend(records []PerformanceRecord, windowSize int) Trend {
	if len(records) == 0 {
		return Trend{
			ScoreTrend: TrendStable,
			TimeTrend:  TimeStable,
		}
	}
	if windowSize <= 0 {
		windowSize = DefaultTrendWindow
	}
	if len(records) > windowSize {
		records = records[:windowSize]
	}

	var scoreSum, hintSum float64
	var timeSum, optimal int
	for _, r := range records {
		scoreSum += r.Score
		hintSum += float64(r.HintsUsed)
		timeSum += r.ResponseTimeMs
		if InOptimalZone(r.Score) {
			optimal++
		}
	}
	n := len(records)

	t := Trend{
		WindowSize:        n,
		AvgScore:          scoreSum / float64(n),
		ScoreTrend:        scoreDirection(records),
		AvgResponseTimeMs: timeSum / n,
		TimeTrend:         timeDirection(records),
		AvgHintsUsed:      hintSum / float64(n),
		OptimalZoneRatio:  float64(optimal) / float64(n),
	}
	t.ConsecutiveCorrect, t.ConsecutiveIncorrect = currentStreaks(records)
	return t
}

// scoreDirection splits the window at the floor midpoint and compares the
// mean of the back half against the front half. Input is newest-first, so
// the front half holds the newer records; improving means the back half
// scored more than 0.05 above the front half.
func scoreDirection(records []PerformanceRecord) string {
	if len(records) < 2 {
		return TrendStable
	}
	mid := len(records) / 2
	var front, back float64
	for _, r := range records[:mid] {
		front += r.Score
	}
	for _, r := range records[mid:] {
		back += r.Score
	}
	front /= float64(mid)
	back /= float64(len(records) - mid)

	switch {
	case back > front+0.05:
		return TrendImproving
	case back < front-0.05:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// timeDirection applies the same halves comparison to response times.
// Requires every time to be positive; otherwise reports stable.
func timeDirection(records []PerformanceRecord) string {
	if len(records) < 2 {
		return TimeStable
	}
	for _, r := range records {
		if r.ResponseTimeMs <= 0 {
			return TimeStable
		}
	}
	mid := len(records) / 2
	var front, back float64
	for _, r := range records[:mid] {
		front += float64(r.ResponseTimeMs)
	}
	for _, r := range records[mid:] {
		back += float64(r.ResponseTimeMs)
	}
	front /= float64(mid)
	back /= float64(len(records) - mid)

	switch {
	case back < front*0.9:
		return TimeFaster
	case back > front*1.1:
		return TimeSlower
	default:
		return TimeStable
	}
}

// currentStreaks scans from the most recent record and counts the current
// run. The record that breaks the run is counted as the start of the
// opposite streak, then scanning stops; historical maxima are not tracked.
func currentStreaks(records []PerformanceRecord) (correct, incorrect int) {
	for _, r := range records {
		if r.Score >= CorrectThreshold {
			if incorrect > 0 {
				correct++
				return correct, incorrect
			}
			correct++
		} else {
			if correct > 0 {
				incorrect++
				return correct, incorrect
			}
			incorrect++
		}
	}
	return correct, incorrect
}
