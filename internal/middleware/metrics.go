package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// <namespace>_<subsystem>_<metric>_<unit>
const metricsNamespace = "bankist"

// HTTPMetrics counts requests and observes their latency per route template
func HTTPMetrics(reg prometheus.Registerer) echo.MiddlewareFunc {
	factory := promauto.With(reg)

	requestsTotal := factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed.",
		},
		[]string{"route", "method", "status"},
	)

	requestDuration := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Histogram of HTTP request duration",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let the error handler write the response so the status is final
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unknown"
			}

			requestsTotal.WithLabelValues(route, c.Request().Method, statusClass(c.Response().Status)).Inc()
			requestDuration.WithLabelValues(route, c.Request().Method).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}
