package app

import (
	"fmt"

	"github.com/kimjw-dev/moodlens-backend/internal/analysis"
	"github.com/kimjw-dev/moodlens-backend/internal/collect"
	"github.com/kimjw-dev/moodlens-backend/internal/db"
	"github.com/kimjw-dev/moodlens-backend/internal/observability"
	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/repos"
	"github.com/kimjw-dev/moodlens-backend/internal/services"
	"github.com/kimjw-dev/moodlens-backend/internal/store"
)

type Services struct {
	Analysis services.AnalysisService
	Monitor  *observability.ResourceMonitor
}

func wireServices(cfg Config, clients Clients, log *logger.Logger) (Services, error) {
	sqlite, err := db.NewSQLiteService(log)
	if err != nil {
		return Services{}, fmt.Errorf("init sqlite: %w", err)
	}
	if err := sqlite.AutoMigrateAll(); err != nil {
		return Services{}, fmt.Errorf("sqlite automigrate: %w", err)
	}

	localRepo := repos.NewLocalAnalysisRepo(sqlite.GetDB(), log)
	localStore := store.NewLocalStore(localRepo, log)

	var primary store.AnalysisStore
	if clients.Firestore != nil {
		primary = clients.Firestore
	}
	analysisStore := store.NewFallbackStore(primary, localStore, log)

	var youtubeSource collect.YouTubeSource
	if clients.YouTube != nil {
		youtubeSource = clients.YouTube
	}
	var calendarSource collect.CalendarSource
	if clients.Calendar != nil {
		calendarSource = clients.Calendar
	}
	collector := collect.NewIntegratedCollector(youtubeSource, calendarSource, cfg.Limits, log)

	engine := analysis.NewEngine(cfg.Analysis, log)

	return Services{
		Analysis: services.NewAnalysisService(collector, engine, analysisStore, clients.Cache, log),
		Monitor:  observability.NewResourceMonitor(cfg.MonitorInterval, log),
	}, nil
}
