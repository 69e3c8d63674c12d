package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/internlink/internal/pkg/logger"
)

// RequestLogger logs each request with its status and duration
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Str("clientIP", c.ClientIP()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
