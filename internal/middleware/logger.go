package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/clinic-api/pkg/logger"
)

// RequestLogger returns a middleware that logs HTTP requests
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	log = log.WithComponent("http")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		if raw != "" {
			path = path + "?" + raw
		}

		fields := []interface{}{
			"request_id", c.GetString(ContextRequestID),
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			log.Error(nil, "server error", fields...)
		case status >= 400:
			log.Warn("client error", fields...)
		default:
			log.Info("request processed", fields...)
		}
	}
}
