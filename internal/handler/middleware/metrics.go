package middleware

import (
	"strconv"
	"time"

	"book-manager/internal/observability/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware instruments requests with Prometheus metrics. The route
// template keeps path cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
