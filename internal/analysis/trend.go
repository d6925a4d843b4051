package analysis

import (
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

// ComputeTrend compares the two newest emotion scores against the rest of the
// history window. History must be ordered newest first. Returns nil when there
// are fewer than two records; that is "not enough data", not an error.
func ComputeTrend(history []types.AnalysisRecord) *types.TrendAnalysis {
	if len(history) < 2 {
		return nil
	}

	scores := make([]float64, 0, len(history))
	for _, record := range history {
		scores = append(scores, record.OverallEmotion.EmotionScore)
	}

	recentAvg := (scores[0] + scores[1]) / 2
	olderAvg := recentAvg
	if len(scores) > 2 {
		sum := 0.0
		for _, s := range scores[2:] {
			sum += s
		}
		olderAvg = sum / float64(len(scores)-2)
	}

	direction := types.TrendFlat
	switch {
	case recentAvg > olderAvg:
		direction = types.TrendUp
	case recentAvg < olderAvg:
		direction = types.TrendDown
	}

	return &types.TrendAnalysis{
		EmotionTrend:      direction,
		RecentAverage:     recentAvg,
		HistoricalAverage: olderAvg,
		DataPoints:        len(scores),
	}
}
