package collect

import (
	"context"
	"time"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

// YouTubeSource is what the collector needs from the YouTube wrapper.
type YouTubeSource interface {
	Subscriptions(ctx context.Context, maxResults int64) ([]types.SubscriptionRecord, error)
	LikedVideos(ctx context.Context, maxResults int64) ([]types.LikedVideoRecord, error)
}

// CalendarSource is what the collector needs from the Calendar wrapper.
type CalendarSource interface {
	RecentEvents(ctx context.Context, daysBack int, maxResults int64) ([]types.CalendarEventRecord, error)
}

// Limits bound how much raw material one run pulls from each API.
type Limits struct {
	YouTubeMaxResults  int64
	CalendarMaxResults int64
	CalendarDaysBack   int
}

func DefaultLimits() Limits {
	return Limits{
		YouTubeMaxResults:  10,
		CalendarMaxResults: 20,
		CalendarDaysBack:   14,
	}
}

// IntegratedCollector runs both sources sequentially and merges the results
// into one bundle. Per-call failures are logged and degrade to empty lists;
// only a source that was never connected (nil) marks the bundle not ready.
type IntegratedCollector struct {
	youtube  YouTubeSource
	calendar CalendarSource
	limits   Limits
	log      *logger.Logger
	now      func() time.Time
}

func NewIntegratedCollector(youtube YouTubeSource, calendar CalendarSource, limits Limits, log *logger.Logger) *IntegratedCollector {
	collectorLog := log.With("service", "IntegratedCollector")
	return &IntegratedCollector{
		youtube:  youtube,
		calendar: calendar,
		limits:   limits,
		log:      collectorLog,
		now:      time.Now,
	}
}

func (c *IntegratedCollector) CollectAll(ctx context.Context, userID string) types.CollectedData {
	data := types.CollectedData{
		UserID:         userID,
		CollectionDate: c.now().Format("2006-01-02 15:04:05"),
	}

	youtubeOK := c.youtube != nil
	if youtubeOK {
		subscriptions, err := c.youtube.Subscriptions(ctx, c.limits.YouTubeMaxResults)
		if err != nil {
			c.log.Warn("YouTube subscription collection failed", "error", err)
			subscriptions = nil
		}
		liked, err := c.youtube.LikedVideos(ctx, c.limits.YouTubeMaxResults)
		if err != nil {
			c.log.Warn("YouTube liked-video collection failed", "error", err)
			liked = nil
		}
		data.YouTube = types.YouTubeData{
			Subscriptions:     subscriptions,
			LikedVideos:       liked,
			SubscriptionCount: len(subscriptions),
			LikedCount:        len(liked),
		}
	} else {
		c.log.Warn("YouTube source not connected, skipping")
	}

	calendarOK := c.calendar != nil
	if calendarOK {
		events, err := c.calendar.RecentEvents(ctx, c.limits.CalendarDaysBack, c.limits.CalendarMaxResults)
		if err != nil {
			c.log.Warn("Calendar collection failed", "error", err)
			events = nil
		}
		data.Calendar = types.CalendarData{
			Events:           events,
			ScheduleAnalysis: summarizeSchedule(events),
			EventCount:       len(events),
		}
	} else {
		c.log.Warn("Calendar source not connected, skipping")
	}

	data.AnalysisReady = youtubeOK && calendarOK
	c.log.Info("Collection complete",
		"subscriptions", data.YouTube.SubscriptionCount,
		"liked", data.YouTube.LikedCount,
		"events", data.Calendar.EventCount,
		"analysis_ready", data.AnalysisReady)
	return data
}

// summarizeSchedule is the collection-time density view: per-day counts,
// the busiest day and a coarse fatigue label for the summary printout.
func summarizeSchedule(events []types.CalendarEventRecord) types.ScheduleSummary {
	if len(events) == 0 {
		return types.ScheduleSummary{}
	}

	dailyCounts := map[string]int{}
	for _, event := range events {
		dailyCounts[event.StartDate]++
	}

	maxDay := ""
	maxEvents := 0
	for day, n := range dailyCounts {
		if n > maxEvents || (n == maxEvents && day < maxDay) {
			maxDay, maxEvents = day, n
		}
	}

	avg := float64(len(events)) / float64(len(dailyCounts))
	label := "낮음"
	switch {
	case avg > 5:
		label = "높음"
	case avg > 3:
		label = "중간"
	}

	return types.ScheduleSummary{
		DailyCounts:  dailyCounts,
		AvgPerDay:    avg,
		MaxEvents:    maxEvents,
		MaxDay:       maxDay,
		FatigueLevel: label,
	}
}
