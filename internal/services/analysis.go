package services

import (
	"context"
	"time"

	"github.com/kimjw-dev/moodlens-backend/internal/analysis"
	"github.com/kimjw-dev/moodlens-backend/internal/clients/redis"
	"github.com/kimjw-dev/moodlens-backend/internal/pkg/errs"
	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/store"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

const (
	trendHistoryLimit = 7
	saveAttempts      = 2
	saveRetryDelay    = 2 * time.Second
)

// Collector is the data-collection half of the pipeline.
type Collector interface {
	CollectAll(ctx context.Context, userID string) types.CollectedData
}

type AnalysisService interface {
	RunAnalysis(ctx context.Context, userID string) (*types.Report, *types.FailureReport)
	History(ctx context.Context, userID string, limit int) ([]types.AnalysisRecord, error)
	Trends(ctx context.Context, userID string, days int) (*types.EmotionTrends, error)
}

type analysisService struct {
	collector Collector
	engine    *analysis.Engine
	store     store.AnalysisStore
	cache     redis.HistoryCache
	log       *logger.Logger
	now       func() time.Time
}

// NewAnalysisService wires the full pipeline. cache may be nil, every other
// dependency is required.
func NewAnalysisService(collector Collector, engine *analysis.Engine, analysisStore store.AnalysisStore, cache redis.HistoryCache, baseLog *logger.Logger) AnalysisService {
	serviceLog := baseLog.With("service", "AnalysisService")
	return &analysisService{
		collector: collector,
		engine:    engine,
		store:     analysisStore,
		cache:     cache,
		log:       serviceLog,
		now:       time.Now,
	}
}

// RunAnalysis executes collect, analyze, persist, trend and feedback in
// order. Collection, analysis and persistence failures abort with a failure
// report; trend failures only degrade.
func (s *analysisService) RunAnalysis(ctx context.Context, userID string) (*types.Report, *types.FailureReport) {
	log := s.log.With("user_id", userID)
	log.Info("Analysis run started")

	var data types.CollectedData
	if err := runStage(log, "collect", func() error {
		data = s.collector.CollectAll(ctx, userID)
		if !data.AnalysisReady {
			return errs.DataCollection("not enough connected sources", nil)
		}
		return nil
	}); err != nil {
		return nil, failure("데이터 수집 실패", err)
	}

	record := &types.AnalysisRecord{
		UserID:       userID,
		AnalysisDate: s.now().Format("2006-01-02 15:04:05"),
	}
	if err := runStage(log, "analyze", func() error {
		record.YouTubeAnalysis = s.engine.AnalyzeYouTube(data.YouTube)
		record.CalendarAnalysis = s.engine.AnalyzeCalendar(data.Calendar)
		record.OverallEmotion = s.engine.OverallEmotion(record.YouTubeAnalysis, record.CalendarAnalysis)
		return nil
	}); err != nil {
		return nil, failure("감정 분석 실패", err)
	}

	if err := runStage(log, "persist", func() error {
		return withRetry(ctx, saveAttempts, saveRetryDelay, func() error {
			_, err := s.store.Save(ctx, userID, record)
			return err
		})
	}); err != nil {
		return nil, failure("분석 결과 저장 실패", err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}

	var history []types.AnalysisRecord
	if err := runStage(log, "trend", func() error {
		var err error
		history, err = s.History(ctx, userID, trendHistoryLimit)
		return err
	}); err == nil {
		record.Trend = analysis.ComputeTrend(history)
	} else {
		log.Warn("Trend analysis skipped", "error", err)
	}

	feedback := buildFeedback(record)
	report := s.compileReport(userID, record, feedback, len(history))
	log.Info("Analysis run complete",
		"emotion_state", record.OverallEmotion.EmotionState,
		"emotion_score", record.OverallEmotion.EmotionScore,
		"data_source", record.DataSource)
	return report, nil
}

func (s *analysisService) History(ctx context.Context, userID string, limit int) ([]types.AnalysisRecord, error) {
	if s.cache != nil {
		if records, ok := s.cache.Get(ctx, userID, limit); ok {
			return records, nil
		}
	}

	records, err := s.store.History(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, userID, limit, records)
	}
	return records, nil
}

// Trends flattens recent history into per-field series. The store limit
// carries headroom over the requested day count because a day can hold more
// than one analysis.
func (s *analysisService) Trends(ctx context.Context, userID string, days int) (*types.EmotionTrends, error) {
	history, err := s.History(ctx, userID, days*3)
	if err != nil {
		return nil, err
	}

	trends := &types.EmotionTrends{
		EmotionScores:  []float64{},
		StressLevels:   []string{},
		FatigueIndices: []float64{},
		Dates:          []string{},
	}
	for _, record := range history {
		trends.EmotionScores = append(trends.EmotionScores, record.OverallEmotion.EmotionScore)
		trends.StressLevels = append(trends.StressLevels, record.CalendarAnalysis.StressLevel)
		trends.FatigueIndices = append(trends.FatigueIndices, record.CalendarAnalysis.FatigueIndex)
		trends.Dates = append(trends.Dates, record.AnalysisDate)
	}
	return trends, nil
}

func (s *analysisService) compileReport(userID string, record *types.AnalysisRecord, feedback types.Feedback, historyLen int) *types.Report {
	return &types.Report{
		Success:           true,
		UserID:            userID,
		AnalysisTimestamp: s.now().Format("2006-01-02 15:04:05"),
		EmotionSummary: types.EmotionSummary{
			CurrentMood:  record.OverallEmotion.EmotionState,
			MoodEmoji:    record.OverallEmotion.MoodEmoji,
			EmotionScore: record.OverallEmotion.EmotionScore,
			StressLevel:  record.CalendarAnalysis.StressLevel,
			FatigueIndex: record.CalendarAnalysis.FatigueIndex,
		},
		DetailedAnalysis:     record,
		PersonalizedFeedback: feedback,
		DataQuality: types.DataQuality{
			YouTubeItems:     record.YouTubeAnalysis.TotalChannels + record.YouTubeAnalysis.TotalLiked,
			CalendarEvents:   record.CalendarAnalysis.DailyCounts,
			HistoryAvailable: historyLen,
		},
	}
}

func failure(msg string, err error) *types.FailureReport {
	return &types.FailureReport{
		Success:   false,
		Error:     msg,
		ErrorType: string(errs.KindOf(err)),
	}
}
