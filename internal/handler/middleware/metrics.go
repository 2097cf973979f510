package middleware

import (
	"strconv"
	"time"

	"couponhub/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware labels by route template so coupon ids do not explode cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
