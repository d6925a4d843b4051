package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/kimjw-dev/moodlens-backend/internal/http/handlers"
	httpMW "github.com/kimjw-dev/moodlens-backend/internal/http/middleware"
	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
)

type RouterConfig struct {
	HealthHandler   *httpH.HealthHandler
	AnalysisHandler *httpH.AnalysisHandler
	Log             *logger.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	if cfg.AnalysisHandler != nil {
		r.POST("/analyze", cfg.AnalysisHandler.Analyze)
		r.GET("/history/:user_id", cfg.AnalysisHandler.History)
		r.GET("/trends/:user_id", cfg.AnalysisHandler.Trends)
	}

	return r
}
