package google

import (
	"context"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

// YouTubeClient wraps the read-only subscription and liked-video lists.
// Pagination beyond one page is deliberately not followed; maxResults caps
// the sample the scoring engine works with.
type YouTubeClient struct {
	svc *youtube.Service
	log *logger.Logger
}

func NewYouTubeClient(ctx context.Context, httpClient *http.Client, log *logger.Logger) (*YouTubeClient, error) {
	clientLog := log.With("client", "YouTubeClient")
	svc, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		clientLog.Error("Failed to build YouTube service", "error", err)
		return nil, err
	}
	return &YouTubeClient{svc: svc, log: clientLog}, nil
}

func (c *YouTubeClient) Subscriptions(ctx context.Context, maxResults int64) ([]types.SubscriptionRecord, error) {
	resp, err := c.svc.Subscriptions.List([]string{"snippet"}).
		Mine(true).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		c.log.Warn("Listing subscriptions failed", "error", err)
		return nil, err
	}

	subscriptions := make([]types.SubscriptionRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil || item.Snippet.ResourceId == nil {
			continue
		}
		subscriptions = append(subscriptions, types.SubscriptionRecord{
			ChannelName:  item.Snippet.Title,
			ChannelID:    item.Snippet.ResourceId.ChannelId,
			SubscribedAt: dateOnly(item.Snippet.PublishedAt),
		})
	}
	c.log.Debug("Subscriptions collected", "count", len(subscriptions))
	return subscriptions, nil
}

func (c *YouTubeClient) LikedVideos(ctx context.Context, maxResults int64) ([]types.LikedVideoRecord, error) {
	resp, err := c.svc.Videos.List([]string{"snippet"}).
		MyRating("like").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		c.log.Warn("Listing liked videos failed", "error", err)
		return nil, err
	}

	videos := make([]types.LikedVideoRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil {
			continue
		}
		videos = append(videos, types.LikedVideoRecord{
			Title:       item.Snippet.Title,
			VideoID:     item.Id,
			ChannelName: item.Snippet.ChannelTitle,
			PublishedAt: dateOnly(item.Snippet.PublishedAt),
		})
	}
	c.log.Debug("Liked videos collected", "count", len(videos))
	return videos, nil
}

// dateOnly truncates an RFC3339 timestamp to its YYYY-MM-DD prefix, the
// resolution the recency decay works at.
func dateOnly(ts string) string {
	if len(ts) > 10 {
		return ts[:10]
	}
	return ts
}
