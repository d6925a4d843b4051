package app

import (
	"github.com/gin-gonic/gin"

	httpserver "github.com/kimjw-dev/moodlens-backend/internal/http"
	httpH "github.com/kimjw-dev/moodlens-backend/internal/http/handlers"
	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Analysis *httpH.AnalysisHandler
}

func wireHandlers(serviceset Services, log *logger.Logger) Handlers {
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Analysis: httpH.NewAnalysisHandler(serviceset.Analysis, log),
	}
}

func wireRouter(handlerset Handlers, log *logger.Logger) *gin.Engine {
	return httpserver.NewRouter(httpserver.RouterConfig{
		HealthHandler:   handlerset.Health,
		AnalysisHandler: handlerset.Analysis,
		Log:             log,
	})
}
