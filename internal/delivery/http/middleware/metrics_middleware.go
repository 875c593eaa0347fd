package middleware

import (
	"strconv"
	"time"

	"cardapio/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware is the constructor for MetricsMiddleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes every finished request. The route template keeps the
// label cardinality bounded regardless of path parameters.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		m.metrics.ObserveHTTPRequest(
			c.Request().Method,
			route,
			strconv.Itoa(c.Response().Status),
			time.Since(start).Seconds(),
		)

		return nil
	}
}
