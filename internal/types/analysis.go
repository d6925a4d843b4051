package types

import "time"

// Stress levels derived from the fatigue index.
const (
	StressLow    = "low"
	StressMedium = "medium"
	StressHigh   = "high"
)

// Trend direction labels, kept in the original's Korean.
const (
	TrendUp   = "상승"
	TrendDown = "하락"
	TrendFlat = "유지"
)

// EmotionScores is the normalized positive/negative/neutral split. Weights are
// non-negative and sum to 1 when there was any signal, all zero otherwise.
type EmotionScores struct {
	Positive float64 `json:"positive" firestore:"positive"`
	Negative float64 `json:"negative" firestore:"negative"`
	Neutral  float64 `json:"neutral" firestore:"neutral"`
}

// InterestScores is the normalized interest-category split.
type InterestScores struct {
	Entertainment float64 `json:"entertainment" firestore:"entertainment"`
	Lifestyle     float64 `json:"lifestyle" firestore:"lifestyle"`
	Education     float64 `json:"education" firestore:"education"`
	Social        float64 `json:"social" firestore:"social"`
}

// YouTubeAnalysis is the scored view of one YouTube bundle.
type YouTubeAnalysis struct {
	EmotionScores EmotionScores  `json:"emotion_scores" firestore:"emotion_scores"`
	Interests     InterestScores `json:"interests" firestore:"interests"`
	TotalChannels int            `json:"total_channels" firestore:"total_channels"`
	TotalLiked    int            `json:"total_liked" firestore:"total_liked"`
}

// TimeDistribution counts timed events per day bucket.
type TimeDistribution struct {
	Morning   int `json:"morning" firestore:"morning"`
	Afternoon int `json:"afternoon" firestore:"afternoon"`
	Evening   int `json:"evening" firestore:"evening"`
	Night     int `json:"night" firestore:"night"`
}

// CalendarAnalysis is the fatigue view of one calendar bundle.
type CalendarAnalysis struct {
	FatigueIndex     float64          `json:"fatigue_index" firestore:"fatigue_index"`
	StressLevel      string           `json:"stress_level" firestore:"stress_level"`
	DailyCounts      map[string]int   `json:"daily_counts,omitempty" firestore:"daily_counts,omitempty"`
	TimeDistribution TimeDistribution `json:"time_distribution" firestore:"time_distribution"`
	MaxDailyEvents   int              `json:"max_daily_events" firestore:"max_daily_events"`
}

// OverallEmotion fuses the YouTube emotion split with calendar stress.
// EmotionScore is deliberately unclamped; the state bands are open-ended.
type OverallEmotion struct {
	EmotionScore    float64  `json:"emotion_score" firestore:"emotion_score"`
	EmotionState    string   `json:"emotion_state" firestore:"emotion_state"`
	MoodEmoji       string   `json:"mood_emoji" firestore:"mood_emoji"`
	TopInterest     string   `json:"top_interest" firestore:"top_interest"`
	Recommendations []string `json:"recommendations" firestore:"recommendations"`
}

// TrendAnalysis compares the newest scores against the older history window.
type TrendAnalysis struct {
	EmotionTrend      string  `json:"emotion_trend" firestore:"emotion_trend"`
	RecentAverage     float64 `json:"recent_average" firestore:"recent_average"`
	HistoricalAverage float64 `json:"historical_average" firestore:"historical_average"`
	DataPoints        int     `json:"data_points" firestore:"data_points"`
}

// AnalysisRecord is the persisted unit, one per analysis run. The firestore
// tags pin the document shape expected by existing consumers.
type AnalysisRecord struct {
	UserID           string           `json:"user_id" firestore:"user_id"`
	AnalysisID       string           `json:"analysis_id" firestore:"analysis_id"`
	Timestamp        time.Time        `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	AnalysisDate     string           `json:"analysis_date" firestore:"analysis_date"`
	YouTubeAnalysis  YouTubeAnalysis  `json:"youtube_analysis" firestore:"youtube_analysis"`
	CalendarAnalysis CalendarAnalysis `json:"calendar_analysis" firestore:"calendar_analysis"`
	OverallEmotion   OverallEmotion   `json:"overall_emotion" firestore:"overall_emotion"`
	Trend            *TrendAnalysis   `json:"trend_analysis,omitempty" firestore:"trend_analysis,omitempty"`
	DataSource       string           `json:"data_source" firestore:"data_source"`
	Version          string           `json:"version" firestore:"version"`
}
