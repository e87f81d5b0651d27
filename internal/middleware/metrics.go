package middleware

import (
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency labelled by route template
func Metrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		durationMs := float64(time.Since(start).Microseconds()) / 1000
		m.RecordHTTPRequest(route, c.Request.Method, c.Writer.Status(), durationMs)
	}
}
