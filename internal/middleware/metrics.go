package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/buildra-io/sitetrack/internal/infra/metrics"
)

// Metrics records per-route HTTP request duration. The route template
// (c.FullPath) is used as the path label so parameterized routes do not
// explode label cardinality; unmatched routes are labeled "unmatched".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
