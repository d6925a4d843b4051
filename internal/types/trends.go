package types

// EmotionTrends is the columnar history view served by the trends endpoint.
// Entries are aligned by index, newest first.
type EmotionTrends struct {
	EmotionScores  []float64 `json:"emotion_scores"`
	StressLevels   []string  `json:"stress_levels"`
	FatigueIndices []float64 `json:"fatigue_indices"`
	Dates          []string  `json:"dates"`
}
