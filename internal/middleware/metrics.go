package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/munchbox/munchbox/internal/metrics"
)

// Metrics records the request counter and latency histogram. The
// route template (e.g. /api/orders/:id) is used as the label, not the
// raw path, to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		metrics.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
