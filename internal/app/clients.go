package app

import (
	"context"

	googleclients "github.com/kimjw-dev/moodlens-backend/internal/clients/google"
	redisclients "github.com/kimjw-dev/moodlens-backend/internal/clients/redis"
	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/store"
)

type Clients struct {
	YouTube   *googleclients.YouTubeClient
	Calendar  *googleclients.CalendarClient
	Firestore *store.FirestoreStore
	Cache     redisclients.HistoryCache
}

// wireClients builds every external connection. Each failure is logged and
// leaves the client nil; the pipeline degrades instead of refusing to boot.
func wireClients(ctx context.Context, cfg Config, log *logger.Logger) Clients {
	var clients Clients

	httpClient, err := googleclients.HTTPClient(ctx, googleclients.AuthConfig{
		CredentialsFile: cfg.GoogleCredentialsFile,
		TokenFile:       cfg.GoogleTokenFile,
		Scopes:          googleclients.Scopes,
	})
	if err != nil {
		log.Warn("Google auth unavailable, collectors disabled", "error", err)
	} else {
		if clients.YouTube, err = googleclients.NewYouTubeClient(ctx, httpClient, log); err != nil {
			log.Warn("YouTube client init failed", "error", err)
			clients.YouTube = nil
		}
		if clients.Calendar, err = googleclients.NewCalendarClient(ctx, httpClient, log); err != nil {
			log.Warn("Calendar client init failed", "error", err)
			clients.Calendar = nil
		}
	}

	if cfg.FirestoreProjectID == "" {
		log.Warn("FIRESTORE_PROJECT_ID not set, using local storage only")
	} else if clients.Firestore, err = store.NewFirestoreStore(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile, log); err != nil {
		log.Warn("Firestore init failed, using local storage only", "error", err)
		clients.Firestore = nil
	}

	if cache, err := redisclients.NewHistoryCache(log, cfg.CacheTTL); err != nil {
		log.Warn("History cache disabled", "error", err)
	} else {
		clients.Cache = cache
	}

	return clients
}
