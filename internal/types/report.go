package types

// EmotionSummary is the caller-facing headline of one run.
type EmotionSummary struct {
	CurrentMood  string  `json:"current_mood"`
	MoodEmoji    string  `json:"mood_emoji"`
	EmotionScore float64 `json:"emotion_score"`
	StressLevel  string  `json:"stress_level"`
	FatigueIndex float64 `json:"fatigue_index"`
}

// Feedback is the personalized feedback block built after trend analysis.
type Feedback struct {
	CurrentState    string   `json:"current_state"`
	Recommendations []string `json:"recommendations"`
	Insights        []string `json:"insights"`
	ActionItems     []string `json:"action_items"`
}

// DataQuality describes how much raw material the run had to work with.
type DataQuality struct {
	YouTubeItems     int            `json:"youtube_items"`
	CalendarEvents   map[string]int `json:"calendar_events"`
	HistoryAvailable int            `json:"history_available"`
}

// Report is the final object an analysis run hands back to the caller.
type Report struct {
	Success              bool            `json:"success"`
	UserID               string          `json:"user_id"`
	AnalysisTimestamp    string          `json:"analysis_timestamp"`
	EmotionSummary       EmotionSummary  `json:"emotion_summary"`
	DetailedAnalysis     *AnalysisRecord `json:"detailed_analysis,omitempty"`
	PersonalizedFeedback Feedback        `json:"personalized_feedback"`
	DataQuality          DataQuality     `json:"data_quality"`
}

// FailureReport is returned instead of a Report when an essential stage fails.
type FailureReport struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorType string `json:"error_type"`
}
