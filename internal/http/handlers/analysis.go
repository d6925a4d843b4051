package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kimjw-dev/moodlens-backend/internal/http/response"
	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/services"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

const (
	defaultUserID       = "default_user"
	defaultHistoryLimit = 10
	defaultTrendDays    = 7
)

type AnalysisHandler struct {
	service services.AnalysisService
	log     *logger.Logger
	now     func() time.Time
}

func NewAnalysisHandler(service services.AnalysisService, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		log:     log.With("handler", "AnalysisHandler"),
		now:     time.Now,
	}
}

type analyzeRequest struct {
	UserID       string `json:"user_id"`
	ForceRefresh bool   `json:"force_refresh"`
}

type analyzeResponse struct {
	Success              bool                  `json:"success"`
	UserID               string                `json:"user_id"`
	Timestamp            string                `json:"timestamp"`
	EmotionSummary       *types.EmotionSummary `json:"emotion_summary,omitempty"`
	PersonalizedFeedback *types.Feedback       `json:"personalized_feedback,omitempty"`
	ErrorMessage         string                `json:"error_message,omitempty"`
}

// POST /analyze
// body: { "user_id": "...", "force_refresh": false }
//
// Pipeline failures come back as success:false JSON rather than an HTTP
// fault, so clients can always decode the same shape.
func (ah *AnalysisHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	if req.UserID == "" {
		req.UserID = defaultUserID
	}
	ah.log.Info("Analysis requested", "user_id", req.UserID, "force_refresh", req.ForceRefresh)

	report, fail := ah.service.RunAnalysis(c.Request.Context(), req.UserID)
	if fail != nil {
		c.JSON(http.StatusOK, analyzeResponse{
			Success:      false,
			UserID:       req.UserID,
			Timestamp:    ah.now().Format(time.RFC3339),
			ErrorMessage: fmt.Sprintf("분석 실패: %s", fail.Error),
		})
		return
	}

	c.JSON(http.StatusOK, analyzeResponse{
		Success:              true,
		UserID:               req.UserID,
		Timestamp:            report.AnalysisTimestamp,
		EmotionSummary:       &report.EmotionSummary,
		PersonalizedFeedback: &report.PersonalizedFeedback,
	})
}

// GET /history/:user_id?limit=10
func (ah *AnalysisHandler) History(c *gin.Context) {
	userID := c.Param("user_id")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_limit", "detail": "limit must be a positive integer"})
		return
	}

	history, err := ah.service.History(c.Request.Context(), userID, limit)
	if err != nil {
		ah.log.Error("History lookup failed", "user_id", userID, "error", err)
		response.RespondError(c, http.StatusInternalServerError, "history_failed", err)
		return
	}
	if history == nil {
		history = []types.AnalysisRecord{}
	}

	response.RespondOK(c, gin.H{
		"success":       true,
		"user_id":       userID,
		"history_count": len(history),
		"history":       history,
	})
}

// GET /trends/:user_id?days=7
func (ah *AnalysisHandler) Trends(c *gin.Context) {
	userID := c.Param("user_id")
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(defaultTrendDays)))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_days", "detail": "days must be a positive integer"})
		return
	}

	trends, err := ah.service.Trends(c.Request.Context(), userID, days)
	if err != nil {
		ah.log.Error("Trend lookup failed", "user_id", userID, "error", err)
		response.RespondError(c, http.StatusInternalServerError, "trends_failed", err)
		return
	}

	response.RespondOK(c, gin.H{
		"success":         true,
		"user_id":         userID,
		"analysis_period": fmt.Sprintf("%d일", days),
		"trends":          trends,
	})
}
