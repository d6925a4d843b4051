package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": h.now().Format(time.RFC3339),
		"version":   apiVersion,
	})
}

// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "감정 분석 시스템 API",
		"status":    "running",
		"timestamp": h.now().Format(time.RFC3339),
		"endpoints": gin.H{
			"health":  "/health",
			"analyze": "/analyze",
			"history": "/history/{user_id}",
			"trends":  "/trends/{user_id}",
		},
	})
}
