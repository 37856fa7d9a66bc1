package difficulty

import (
	"fmt"
	"time"
)

const (
	baseIncreaseThreshold = 0.85
	baseDecreaseThreshold = 0.50

	// Threshold clamps keep the complexity modifier from producing
	// unreachable or trivial targets.
	maxIncreaseThreshold = 0.95
	minDecreaseThreshold = 0.30

	// increaseWindow and decreaseWindow are how many consecutive recent
	// answers each rule inspects.
	increaseWindow = 3
	decreaseWindow = 2
)

// Thresholds returns the effective increase and decrease score thresholds
// for a concept of the given complexity. Complexity above the default
// raises the bar in both directions; below it, lowers.
func Thresholds(complexity int) (increase, decrease float64) {
	if complexity < 1 || complexity > 5 {
		complexity = DefaultComplexity
	}
	modifier := float64(complexity) / float64(DefaultComplexity)

	increase = baseIncreaseThreshold * modifier
	if increase > maxIncreaseThreshold {
		increase = maxIncreaseThreshold
	}
	decrease = baseDecreaseThreshold * modifier
	if decrease < minDecreaseThreshold {
		decrease = minDecreaseThreshold
	}
	return increase, decrease
}

// Adjust decides whether to raise, lower, or hold the difficulty level
// based on the most recent performance records (newest-first).
//
// Rules, in order:
//   - increase: the 3 most recent scores all meet the increase threshold
//     with zero hints used
//   - decrease: the 2 most recent scores are all below the decrease
//     threshold; a realized decrease also recommends scaffolding
//   - maintain: anything else, including fewer than 2 records
//
// The increase check runs first, so a window that qualifies for both can
// only increase. Never returns a level outside [MinLevel, MaxLevel] and
// never fails on numeric input.
func Adjust(currentLevel int, records []PerformanceRecord, complexity int) Adjustment {
	currentLevel = ClampLevel(currentLevel)

	adj := Adjustment{
		PreviousLevel: currentLevel,
		NewLevel:      currentLevel,
		Type:          AdjustMaintain,
		TriggeredBy:   TriggerAnswer,
		Timestamp:     time.Now().UTC(),
	}

	if len(records) < decreaseWindow {
		adj.Reason = "insufficient data for adjustment"
		return adj
	}

	increaseThreshold, decreaseThreshold := Thresholds(complexity)

	if len(records) >= increaseWindow {
		qualifies := true
		for _, r := range records[:increaseWindow] {
			if r.Score < increaseThreshold || r.HintsUsed != 0 {
				qualifies = false
				break
			}
		}
		if qualifies {
			adj.NewLevel = ClampLevel(currentLevel + 1)
			adj.Type = AdjustIncrease
			adj.Reason = fmt.Sprintf("%d consecutive scores >=%.0f%% with no hints",
				increaseWindow, increaseThreshold*100)
			return adj
		}
	}

	low := true
	for _, r := range records[:decreaseWindow] {
		if r.Score >= decreaseThreshold {
			low = false
			break
		}
	}
	if low {
		adj.NewLevel = ClampLevel(currentLevel - 1)
		adj.Type = AdjustDecrease
		adj.Reason = fmt.Sprintf("%d consecutive scores <%.0f%%",
			decreaseWindow, decreaseThreshold*100)
		adj.ScaffoldingRecommended = adj.NewLevel < currentLevel
		return adj
	}

	adj.Reason = "performance in acceptable range"
	return adj
}
