package middlewares

import (
	"strconv"
	"time"

	"github.com/Shruti-ops/fitness-diet-tracker/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records count, latency and in-flight gauge per route template.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		m.IncInFlight()
		defer m.DecInFlight()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
