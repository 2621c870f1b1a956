package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "emergency_locator",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "emergency_locator",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})

	// Directions provider metrics
	DirectionsRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "emergency_locator",
		Subsystem: "directions",
		Name:      "requests_total",
		Help:      "Total directions provider calls",
	}, []string{"provider", "outcome"})

	DirectionsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "emergency_locator",
		Subsystem: "directions",
		Name:      "request_duration_seconds",
		Help:      "Directions provider call latency",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"provider"})

	// Ingestion metrics
	ETLRecordsFetched = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "emergency_locator",
		Subsystem: "etl",
		Name:      "records_fetched_total",
		Help:      "Raw records fetched from the upstream map dataset",
	})

	ETLRecordsLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "emergency_locator",
		Subsystem: "etl",
		Name:      "records_loaded_total",
		Help:      "Normalized facility rows loaded into the store",
	})

	ETLRecordsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "emergency_locator",
		Subsystem: "etl",
		Name:      "records_skipped_total",
		Help:      "Source records skipped during ingestion",
	}, []string{"reason"})
)

// Middleware records request metrics per route pattern.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)

		return err
	}
}

// Handler returns a Fiber handler serving the Prometheus /metrics endpoint.
func Handler() fiber.Handler {
	handler := promhttp.Handler()
	return func(c *fiber.Ctx) error {
		fasthttpadaptor.NewFastHTTPHandler(handler)(c.Context())
		return nil
	}
}
