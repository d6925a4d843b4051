package types

// AllDay is the sentinel start time for events without a clock time.
const AllDay = "종일"

// SubscriptionRecord is one subscribed YouTube channel. Dates are plain
// YYYY-MM-DD strings, exactly as the collectors truncate them.
type SubscriptionRecord struct {
	ChannelName  string `json:"channel_name" firestore:"channel_name"`
	ChannelID    string `json:"channel_id" firestore:"channel_id"`
	SubscribedAt string `json:"subscribed_at" firestore:"subscribed_at"`
}

// LikedVideoRecord is one liked YouTube video.
type LikedVideoRecord struct {
	Title       string `json:"title" firestore:"title"`
	VideoID     string `json:"video_id" firestore:"video_id"`
	ChannelName string `json:"channel" firestore:"channel"`
	PublishedAt string `json:"published_at" firestore:"published_at"`
}

// CalendarEventRecord is one calendar event. StartTime is "HH:MM" for timed
// events or AllDay for date-only events.
type CalendarEventRecord struct {
	Title       string `json:"title" firestore:"title"`
	StartDate   string `json:"start_date" firestore:"start_date"`
	StartTime   string `json:"start_time" firestore:"start_time"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
	Location    string `json:"location,omitempty" firestore:"location,omitempty"`
}

// YouTubeData bundles everything the YouTube collector produced for one run.
type YouTubeData struct {
	Subscriptions     []SubscriptionRecord `json:"subscriptions" firestore:"subscriptions"`
	LikedVideos       []LikedVideoRecord   `json:"liked_videos" firestore:"liked_videos"`
	SubscriptionCount int                  `json:"subscription_count" firestore:"subscription_count"`
	LikedCount        int                  `json:"liked_count" firestore:"liked_count"`
}

// ScheduleSummary is the collection-time density summary of calendar events.
type ScheduleSummary struct {
	DailyCounts  map[string]int `json:"daily_counts" firestore:"daily_counts"`
	AvgPerDay    float64        `json:"avg_per_day" firestore:"avg_per_day"`
	MaxEvents    int            `json:"max_events" firestore:"max_events"`
	MaxDay       string         `json:"max_day" firestore:"max_day"`
	FatigueLevel string         `json:"fatigue_level" firestore:"fatigue_level"`
}

// CalendarData bundles everything the calendar collector produced.
type CalendarData struct {
	Events           []CalendarEventRecord `json:"events" firestore:"events"`
	ScheduleAnalysis ScheduleSummary       `json:"schedule_analysis" firestore:"schedule_analysis"`
	EventCount       int                   `json:"event_count" firestore:"event_count"`
}

// CollectedData is the integrated collector output. AnalysisReady is true only
// when both sources produced a bundle.
type CollectedData struct {
	UserID         string       `json:"user_id"`
	CollectionDate string       `json:"collection_date"`
	YouTube        YouTubeData  `json:"youtube_data"`
	Calendar       CalendarData `json:"calendar_data"`
	AnalysisReady  bool         `json:"analysis_ready"`
}
