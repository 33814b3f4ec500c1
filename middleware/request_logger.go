// Package middleware carries the request-level plumbing shared by every route.
// file: middleware/request_logger.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go-skate-track/logger"
)

// RequestLogger logs one line per request with method, path, status and
// elapsed time. Slow requests get a warning so expiring sweeps and exports
// that drag show up in the log.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		status := c.Writer.Status()
		if elapsed > 500*time.Millisecond {
			logger.Warn.Printf("%s %s -> %d (slow: %s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
			return
		}
		logger.Debug.Printf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
	}
}
