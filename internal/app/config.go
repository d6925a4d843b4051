package app

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kimjw-dev/moodlens-backend/internal/analysis"
	"github.com/kimjw-dev/moodlens-backend/internal/collect"
	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/utils"
)

type Config struct {
	Port                     string
	GoogleCredentialsFile    string
	GoogleTokenFile          string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	CacheTTL                 time.Duration
	MonitorInterval          time.Duration
	Analysis                 analysis.Config
	Limits                   collect.Limits
}

// profile is the optional YAML overlay for analysis and collection tuning,
// pointed at by CONFIG_FILE. Zero values leave the env-derived setting alone.
type profile struct {
	Analysis struct {
		DecayLambda float64 `yaml:"decay_lambda"`
		LikedWeight float64 `yaml:"liked_weight"`
	} `yaml:"analysis"`
	Collection struct {
		YouTubeMaxResults  int64 `yaml:"youtube_max_results"`
		CalendarMaxResults int64 `yaml:"calendar_max_results"`
		CalendarDaysBack   int   `yaml:"calendar_days_back"`
	} `yaml:"collection"`
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:                     utils.GetEnv("PORT", "8000", log),
		GoogleCredentialsFile:    utils.GetEnv("GOOGLE_CREDENTIALS_FILE", "config/credentials.json", log),
		GoogleTokenFile:          utils.GetEnv("GOOGLE_TOKEN_FILE", "config/token.json", log),
		FirestoreProjectID:       utils.GetEnv("FIRESTORE_PROJECT_ID", "", log),
		FirestoreCredentialsFile: utils.GetEnv("FIRESTORE_CREDENTIALS_FILE", "", log),
		CacheTTL:                 time.Duration(utils.GetEnvAsInt("HISTORY_CACHE_TTL_SECONDS", 60, log)) * time.Second,
		MonitorInterval:          time.Duration(utils.GetEnvAsInt("MONITOR_INTERVAL_SECONDS", 30, log)) * time.Second,
		Analysis: analysis.Config{
			DecayLambda: utils.GetEnvAsFloat("DECAY_LAMBDA", 0.1, log),
			LikedWeight: utils.GetEnvAsFloat("LIKED_WEIGHT", 1.5, log),
		},
		Limits: collect.Limits{
			YouTubeMaxResults:  int64(utils.GetEnvAsInt("YOUTUBE_MAX_RESULTS", 10, log)),
			CalendarMaxResults: int64(utils.GetEnvAsInt("CALENDAR_MAX_RESULTS", 20, log)),
			CalendarDaysBack:   utils.GetEnvAsInt("CALENDAR_DAYS_BACK", 14, log),
		},
	}

	if path := utils.GetEnv("CONFIG_FILE", "", log); path != "" {
		applyProfile(&cfg, path, log)
	}
	return cfg
}

func applyProfile(cfg *Config, path string, log *logger.Logger) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn("Config profile unreadable, keeping env settings", "path", path, "error", err)
		return
	}
	var p profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		log.Warn("Config profile malformed, keeping env settings", "path", path, "error", err)
		return
	}

	if p.Analysis.DecayLambda > 0 {
		cfg.Analysis.DecayLambda = p.Analysis.DecayLambda
	}
	if p.Analysis.LikedWeight > 0 {
		cfg.Analysis.LikedWeight = p.Analysis.LikedWeight
	}
	if p.Collection.YouTubeMaxResults > 0 {
		cfg.Limits.YouTubeMaxResults = p.Collection.YouTubeMaxResults
	}
	if p.Collection.CalendarMaxResults > 0 {
		cfg.Limits.CalendarMaxResults = p.Collection.CalendarMaxResults
	}
	if p.Collection.CalendarDaysBack > 0 {
		cfg.Limits.CalendarDaysBack = p.Collection.CalendarDaysBack
	}
	log.Info("Config profile applied", "path", path)
}
