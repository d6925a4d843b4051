package google

import (
	"context"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

// CalendarClient wraps the read-only event list of the user's primary
// calendar, bounded by a trailing day window.
type CalendarClient struct {
	svc *calendar.Service
	log *logger.Logger
	now func() time.Time
}

func NewCalendarClient(ctx context.Context, httpClient *http.Client, log *logger.Logger) (*CalendarClient, error) {
	clientLog := log.With("client", "CalendarClient")
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		clientLog.Error("Failed to build Calendar service", "error", err)
		return nil, err
	}
	return &CalendarClient{svc: svc, log: clientLog, now: time.Now}, nil
}

func (c *CalendarClient) RecentEvents(ctx context.Context, daysBack int, maxResults int64) ([]types.CalendarEventRecord, error) {
	now := c.now().UTC()
	timeMin := now.AddDate(0, 0, -daysBack).Format(time.RFC3339)
	timeMax := now.Format(time.RFC3339)

	resp, err := c.svc.Events.List("primary").
		TimeMin(timeMin).
		TimeMax(timeMax).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		c.log.Warn("Listing calendar events failed", "error", err)
		return nil, err
	}

	events := make([]types.CalendarEventRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Start == nil {
			continue
		}
		startDate, startTime := splitEventStart(item.Start)
		title := item.Summary
		if title == "" {
			title = "제목 없음"
		}
		events = append(events, types.CalendarEventRecord{
			Title:       title,
			StartDate:   startDate,
			StartTime:   startTime,
			Description: item.Description,
			Location:    item.Location,
		})
	}
	c.log.Debug("Calendar events collected", "count", len(events), "days_back", daysBack)
	return events, nil
}

// splitEventStart maps the API's dateTime/date alternative onto the record
// shape: timed events get "HH:MM", date-only events the all-day sentinel.
func splitEventStart(start *calendar.EventDateTime) (string, string) {
	raw := start.DateTime
	if raw == "" {
		raw = start.Date
	}
	if strings.Contains(raw, "T") && len(raw) >= 16 {
		return raw[:10], raw[11:16]
	}
	return raw, types.AllDay
}
