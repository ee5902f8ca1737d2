package search

import (
	"time"

	"github.com/gin-gonic/gin"

	"skyfare/pkg/idgen"
	"skyfare/pkg/logger"
)

// RequestLogger tags every request with a generated ID and writes one access
// log line when the handler finishes.
func RequestLogger(ids idgen.Generator, log logger.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := ids.NextID()
		c.Set("request_id", requestID)
		c.Header("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		log.Info("request completed",
			logger.Field{Key: "request_id", Value: requestID},
			logger.Field{Key: "method", Value: c.Request.Method},
			logger.Field{Key: "path", Value: c.Request.URL.Path},
			logger.Field{Key: "status", Value: c.Writer.Status()},
			logger.Field{Key: "elapsed_ms", Value: time.Since(start).Milliseconds()},
		)
	}
}
