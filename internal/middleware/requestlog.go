package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/safarnesia/umrah-backend/internal/logger"
)

// RequestLog logs one line per request after the handler chain finishes.
// SSE streams are skipped; they stay open for minutes and would log on
// disconnect only.
func RequestLog(log *logger.Logger) gin.HandlerFunc {
	reqLogger := log.With("Middleware", "RequestLog")
	return func(c *gin.Context) {
		if c.FullPath() == "/sse/stream" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			reqLogger.Warn("Request finished with errors", append(fields, "errors", c.Errors.String())...)
			return
		}
		if c.Writer.Status() >= 500 {
			reqLogger.Error("Request failed", fields...)
			return
		}
		reqLogger.Info("Request finished", fields...)
	}
}
