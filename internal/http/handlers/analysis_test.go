package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

type fakeAnalysisService struct {
	report  *types.Report
	failure *types.FailureReport
	history []types.AnalysisRecord
	histErr error
	trends  *types.EmotionTrends
	lastID  string
	limit   int
	days    int
}

func (f *fakeAnalysisService) RunAnalysis(_ context.Context, userID string) (*types.Report, *types.FailureReport) {
	f.lastID = userID
	return f.report, f.failure
}

func (f *fakeAnalysisService) History(_ context.Context, userID string, limit int) ([]types.AnalysisRecord, error) {
	f.lastID, f.limit = userID, limit
	return f.history, f.histErr
}

func (f *fakeAnalysisService) Trends(_ context.Context, userID string, days int) (*types.EmotionTrends, error) {
	f.lastID, f.days = userID, days
	if f.trends == nil {
		return nil, f.histErr
	}
	return f.trends, nil
}

func newTestRouter(t *testing.T, svc *fakeAnalysisService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	h := NewAnalysisHandler(svc, log)
	r := gin.New()
	r.POST("/analyze", h.Analyze)
	r.GET("/history/:user_id", h.History)
	r.GET("/trends/:user_id", h.Trends)
	return r
}

func TestAnalyzeSuccess(t *testing.T) {
	svc := &fakeAnalysisService{report: &types.Report{
		Success:           true,
		UserID:            "u1",
		AnalysisTimestamp: "2026-08-31 10:00:00",
		EmotionSummary:    types.EmotionSummary{CurrentMood: "보통", MoodEmoji: "😐"},
	}}
	r := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"user_id":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", rec.Code)
	}
	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.UserID != "u1" || resp.EmotionSummary.CurrentMood != "보통" {
		t.Fatalf("response: %+v", resp)
	}
	if resp.Timestamp != "2026-08-31 10:00:00" {
		t.Fatalf("timestamp must come from the report: got=%s", resp.Timestamp)
	}
}

func TestAnalyzeDefaultsUserID(t *testing.T) {
	svc := &fakeAnalysisService{report: &types.Report{Success: true}}
	r := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if svc.lastID != "default_user" {
		t.Fatalf("user id: want=default_user got=%s", svc.lastID)
	}
}

func TestAnalyzePipelineFailureIsNotAFault(t *testing.T) {
	svc := &fakeAnalysisService{failure: &types.FailureReport{Error: "데이터 수집 실패", ErrorType: "data_collection_error"}}
	r := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"user_id":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", rec.Code)
	}
	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success || !strings.Contains(resp.ErrorMessage, "데이터 수집 실패") {
		t.Fatalf("response: %+v", resp)
	}
}

func TestAnalyzeBadBody(t *testing.T) {
	r := newTestRouter(t, &fakeAnalysisService{})
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"user_id":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", rec.Code)
	}
}

func TestHistoryDefaultsAndEmpty(t *testing.T) {
	svc := &fakeAnalysisService{}
	r := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/history/u1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", rec.Code)
	}
	if svc.limit != 10 {
		t.Fatalf("default limit: want=10 got=%d", svc.limit)
	}
	var resp struct {
		Success      bool                   `json:"success"`
		HistoryCount int                    `json:"history_count"`
		History      []types.AnalysisRecord `json:"history"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.HistoryCount != 0 || resp.History == nil {
		t.Fatalf("response: %+v", resp)
	}
}

func TestHistoryRejectsBadLimit(t *testing.T) {
	r := newTestRouter(t, &fakeAnalysisService{})
	req := httptest.NewRequest(http.MethodGet, "/history/u1?limit=zero", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", rec.Code)
	}
}

func TestHistoryStoreErrorIsServerError(t *testing.T) {
	svc := &fakeAnalysisService{histErr: errors.New("store down")}
	r := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/history/u1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: want=500 got=%d", rec.Code)
	}
}

func TestTrendsResponseShape(t *testing.T) {
	svc := &fakeAnalysisService{trends: &types.EmotionTrends{
		EmotionScores: []float64{0.4, 0.1},
		StressLevels:  []string{"low", "medium"},
		Dates:         []string{"2026-08-30 10:00:00", "2026-08-29 10:00:00"},
	}}
	r := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/trends/u1?days=3", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", rec.Code)
	}
	if svc.days != 3 {
		t.Fatalf("days: want=3 got=%d", svc.days)
	}
	var resp struct {
		Success        bool                 `json:"success"`
		AnalysisPeriod string               `json:"analysis_period"`
		Trends         *types.EmotionTrends `json:"trends"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.AnalysisPeriod != "3일" || len(resp.Trends.EmotionScores) != 2 {
		t.Fatalf("response: %+v", resp)
	}
}
