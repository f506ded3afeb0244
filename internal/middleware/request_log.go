package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marketops/backoffice/internal/logger"
)

// RequestLog emits one structured line per request with method, path,
// status and latency.
func RequestLog(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
