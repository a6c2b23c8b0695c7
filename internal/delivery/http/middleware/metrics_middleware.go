package middleware

import (
	"strconv"
	"time"

	"lifeline/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latencies per route.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware is the constructor for MetricsMiddleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Observe wraps the handler and reports to the Prometheus collectors. The
// path label uses the route template, not the raw URL, to keep cardinality
// bounded.
func (m *MetricsMiddleware) Observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		status := strconv.Itoa(c.Response().Status)
		method := c.Request().Method
		path := c.Path()

		m.metrics.RequestsTotal.WithLabelValues(method, path, status).Inc()
		m.metrics.RequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())

		return nil
	}
}
