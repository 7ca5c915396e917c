package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"payment-gateway/internal/infrastructure/metrics"
)

// Metrics records request count and latency per route. The route template
// is used as the endpoint label so path parameters don't explode the
// cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RecordRequest(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
