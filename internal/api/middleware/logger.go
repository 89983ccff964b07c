package middleware

import (
	"time"

	"github.com/wojciech1000000/FitnessTracker/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger emits one structured log line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		logFields := logrus.Fields{
			"status_code": c.Writer.Status(),
			"latency":     time.Since(start),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		}

		if len(c.Errors) > 0 {
			logFields["error"] = c.Errors.String()
			logger.WithFields(logFields).Error("Request completed with errors")
		} else if c.Writer.Status() >= 500 {
			logger.WithFields(logFields).Error("Request completed with server error")
		} else if c.Writer.Status() >= 400 {
			logger.WithFields(logFields).Warn("Request completed with client error")
		} else {
			logger.WithFields(logFields).Info("Request completed")
		}
	}
}
