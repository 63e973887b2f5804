package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noteshare/noteshare-server/internal/logger"
)

// Logging logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, status and duration for each request.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	c.Next()

	duration := time.Since(start)

	l.logger.Info("HTTP request completed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration_ms", duration.Milliseconds())
}
