package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
)

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if requestID := RequestID(c.Request.Context()); requestID != "" {
			fields = append(fields, "request_id", requestID)
		}
		log.Info("Request handled", fields...)
	}
}
