package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPMetrics receives one observation per handled request.
type HTTPMetrics interface {
	IncInFlight()
	DecInFlight()
	RecordHTTPRequest(method, path, status string, duration time.Duration)
}

// MetricsMiddleware records request counts and latencies by route template
type MetricsMiddleware struct {
	metrics HTTPMetrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(metrics HTTPMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: metrics}
}

// Handle records the request after the error handler has written the response,
// so failed requests are counted with their real status.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		m.metrics.IncInFlight()
		defer m.metrics.DecInFlight()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		m.metrics.RecordHTTPRequest(c.Request().Method, path, strconv.Itoa(c.Response().Status), time.Since(start))

		return err
	}
}
