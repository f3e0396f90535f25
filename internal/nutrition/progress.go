package nutrition

// DayProgress is one day of the weight and intake history.
type DayProgress struct {
	WeightKG float64
	Calories float64
}

type ProgressStats struct {
	Days            int     `json:"days"`
	StartWeightKG   float64 `json:"start_weight_kg"`
	CurrentWeightKG float64 `json:"current_weight_kg"`
	WeightChangeKG  float64 `json:"weight_change_kg"`
	AverageCalories float64 `json:"average_calories"`
	TargetWeightKG  float64 `json:"target_weight_kg"`
	RemainingKG     float64 `json:"remaining_kg"`
}

// SummarizeProgress reduces a history, oldest day first, to headline
// numbers. An empty history only reports the target.
func SummarizeProgress(days []DayProgress, targetWeightKG float64) ProgressStats {
	stats := ProgressStats{Days: len(days), TargetWeightKG: targetWeightKG}
	if len(days) == 0 {
		return stats
	}

	var calories float64
	for _, d := range days {
		calories += d.Calories
	}
	first, last := days[0], days[len(days)-1]
	stats.StartWeightKG = first.WeightKG
	stats.CurrentWeightKG = last.WeightKG
	stats.WeightChangeKG = roundTo(last.WeightKG-first.WeightKG, 1)
	stats.AverageCalories = roundTo(calories/float64(len(days)), 0)
	if targetWeightKG > 0 {
		stats.RemainingKG = roundTo(last.WeightKG-targetWeightKG, 1)
	}
	return stats
}
