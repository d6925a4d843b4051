package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kimjw-dev/moodlens-backend/internal/analysis"
	"github.com/kimjw-dev/moodlens-backend/internal/pkg/errs"
	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

type fakeCollector struct {
	data types.CollectedData
}

func (f *fakeCollector) CollectAll(_ context.Context, userID string) types.CollectedData {
	d := f.data
	d.UserID = userID
	return d
}

type fakeStore struct {
	saved   []*types.AnalysisRecord
	saveErr error
	history []types.AnalysisRecord
	histErr error
}

func (f *fakeStore) Save(_ context.Context, _ string, record *types.AnalysisRecord) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, record)
	return "a1", nil
}

func (f *fakeStore) History(_ context.Context, _ string, _ int) ([]types.AnalysisRecord, error) {
	return f.history, f.histErr
}

type fakeCache struct {
	entries     map[string][]types.AnalysisRecord
	invalidated int
}

func (f *fakeCache) Get(_ context.Context, userID string, _ int) ([]types.AnalysisRecord, bool) {
	records, ok := f.entries[userID]
	return records, ok
}

func (f *fakeCache) Set(_ context.Context, userID string, _ int, records []types.AnalysisRecord) {
	if f.entries == nil {
		f.entries = map[string][]types.AnalysisRecord{}
	}
	f.entries[userID] = records
}

func (f *fakeCache) Invalidate(_ context.Context, userID string) {
	f.invalidated++
	delete(f.entries, userID)
}

func (f *fakeCache) Close() error { return nil }

func readyData() types.CollectedData {
	return types.CollectedData{
		YouTube: types.YouTubeData{
			Subscriptions: []types.SubscriptionRecord{
				{ChannelName: "힐링 음악", ChannelID: "c1", SubscribedAt: time.Now().Format("2006-01-02")},
			},
			SubscriptionCount: 1,
		},
		Calendar: types.CalendarData{
			Events: []types.CalendarEventRecord{
				{Title: "회의", StartDate: "2026-08-30", StartTime: "14:00"},
			},
			EventCount: 1,
		},
		AnalysisReady: true,
	}
}

func historyOf(scores ...float64) []types.AnalysisRecord {
	var records []types.AnalysisRecord
	for _, s := range scores {
		records = append(records, types.AnalysisRecord{
			AnalysisDate:     "2026-08-30 10:00:00",
			OverallEmotion:   types.OverallEmotion{EmotionScore: s},
			CalendarAnalysis: types.CalendarAnalysis{StressLevel: types.StressLow, FatigueIndex: 0.2},
		})
	}
	return records
}

func newTestService(t *testing.T, collector Collector, st *fakeStore, cache *fakeCache) AnalysisService {
	t.Helper()
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	engine := analysis.NewEngine(analysis.DefaultConfig(), log)
	if cache == nil {
		return NewAnalysisService(collector, engine, st, nil, log)
	}
	return NewAnalysisService(collector, engine, st, cache, log)
}

func TestRunAnalysisHappyPath(t *testing.T) {
	st := &fakeStore{history: historyOf(0.5, 0.3, 0.1)}
	cache := &fakeCache{}
	svc := newTestService(t, &fakeCollector{data: readyData()}, st, cache)

	report, fail := svc.RunAnalysis(context.Background(), "user-1")
	if fail != nil {
		t.Fatalf("unexpected failure: %+v", fail)
	}
	if !report.Success || report.UserID != "user-1" {
		t.Fatalf("report header: %+v", report)
	}
	if len(st.saved) != 1 {
		t.Fatalf("saves: want=1 got=%d", len(st.saved))
	}
	if cache.invalidated != 1 {
		t.Fatalf("cache invalidations: want=1 got=%d", cache.invalidated)
	}
	if report.DetailedAnalysis.Trend == nil || report.DetailedAnalysis.Trend.EmotionTrend != types.TrendUp {
		t.Fatalf("trend: %+v", report.DetailedAnalysis.Trend)
	}
	if report.DataQuality.YouTubeItems != 1 || report.DataQuality.HistoryAvailable != 3 {
		t.Fatalf("data quality: %+v", report.DataQuality)
	}
	if report.EmotionSummary.CurrentMood != report.DetailedAnalysis.OverallEmotion.EmotionState {
		t.Fatal("summary mood must mirror the detailed analysis")
	}
}

func TestRunAnalysisNotReadyFails(t *testing.T) {
	data := readyData()
	data.AnalysisReady = false
	svc := newTestService(t, &fakeCollector{data: data}, &fakeStore{}, nil)

	report, fail := svc.RunAnalysis(context.Background(), "user-1")
	if report != nil || fail == nil {
		t.Fatalf("expected failure report, got report=%v fail=%v", report, fail)
	}
	if fail.Error != "데이터 수집 실패" || fail.ErrorType != string(errs.KindDataCollection) {
		t.Fatalf("failure: %+v", fail)
	}
}

func TestRunAnalysisStoreFailureFails(t *testing.T) {
	st := &fakeStore{saveErr: errs.Storage("down", errors.New("refused"))}
	svc := newTestService(t, &fakeCollector{data: readyData()}, st, nil)

	report, fail := svc.RunAnalysis(context.Background(), "user-1")
	if report != nil || fail == nil {
		t.Fatalf("expected failure report, got report=%v fail=%v", report, fail)
	}
	if fail.ErrorType != string(errs.KindStorage) {
		t.Fatalf("error type: want=%s got=%s", errs.KindStorage, fail.ErrorType)
	}
}

func TestRunAnalysisTrendFailureDegrades(t *testing.T) {
	st := &fakeStore{histErr: errors.New("history down")}
	svc := newTestService(t, &fakeCollector{data: readyData()}, st, nil)

	report, fail := svc.RunAnalysis(context.Background(), "user-1")
	if fail != nil {
		t.Fatalf("trend failure must not abort: %+v", fail)
	}
	if report.DetailedAnalysis.Trend != nil {
		t.Fatal("trend must be absent when history is unavailable")
	}
}

func TestHistoryUsesCache(t *testing.T) {
	st := &fakeStore{history: historyOf(0.4)}
	cache := &fakeCache{entries: map[string][]types.AnalysisRecord{
		"user-1": historyOf(0.9, 0.8),
	}}
	svc := newTestService(t, &fakeCollector{}, st, cache)

	records, err := svc.History(context.Background(), "user-1", 5)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 2 || records[0].OverallEmotion.EmotionScore != 0.9 {
		t.Fatalf("expected cached records, got %+v", records)
	}

	records, err = svc.History(context.Background(), "user-2", 5)
	if err != nil || len(records) != 1 {
		t.Fatalf("store miss path: got=%v err=%v", records, err)
	}
	if _, ok := cache.entries["user-2"]; !ok {
		t.Fatal("store result must be written back to cache")
	}
}

func TestTrendsFlattensHistory(t *testing.T) {
	st := &fakeStore{history: historyOf(0.5, -0.2)}
	svc := newTestService(t, &fakeCollector{}, st, nil)

	trends, err := svc.Trends(context.Background(), "user-1", 7)
	if err != nil {
		t.Fatalf("trends: %v", err)
	}
	if len(trends.EmotionScores) != 2 || trends.EmotionScores[1] != -0.2 {
		t.Fatalf("emotion scores: %v", trends.EmotionScores)
	}
	if trends.StressLevels[0] != types.StressLow || trends.Dates[0] != "2026-08-30 10:00:00" {
		t.Fatalf("trend columns: %+v", trends)
	}
}

func TestTrendsEmptyHistory(t *testing.T) {
	svc := newTestService(t, &fakeCollector{}, &fakeStore{}, nil)
	trends, err := svc.Trends(context.Background(), "user-1", 7)
	if err != nil {
		t.Fatalf("trends: %v", err)
	}
	if len(trends.EmotionScores) != 0 || trends.EmotionScores == nil {
		t.Fatalf("expected empty non-nil series, got %+v", trends)
	}
}

func TestWithRetrySecondAttemptSucceeds(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), 3, time.Millisecond, func() error {
		attempts++
		if attempts < 2 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil || attempts != 2 {
		t.Fatalf("retry: attempts=%d err=%v", attempts, err)
	}
}

func TestWithRetryExhausted(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), 2, time.Millisecond, func() error {
		attempts++
		return errors.New("permanent")
	})
	if err == nil || attempts != 2 {
		t.Fatalf("retry: attempts=%d err=%v", attempts, err)
	}
}
