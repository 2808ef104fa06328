package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "tablet",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tablet",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tablet",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	feeOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tablet",
			Subsystem: "reports",
			Name:      "fee_applications_total",
			Help:      "Fee applications by outcome.",
		},
		[]string{"outcome"},
	)

	logsIngested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tablet",
			Subsystem: "logs",
			Name:      "ingested_total",
			Help:      "Plugin log entries stored, by endpoint and result.",
		},
		[]string{"endpoint", "result"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tablet",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Duration of calls to Discord and FiveM.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "ok"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpInFlight,
		httpRequests,
		httpDuration,
		feeOutcomes,
		logsIngested,
		upstreamDuration,
	)
}

// MetricsHandler exposes the registry in the Prometheus text format
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordHTTP records a finished request
func RecordHTTP(method, path string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// RecordFee counts a fee application outcome
func RecordFee(outcome string) {
	feeOutcomes.WithLabelValues(outcome).Inc()
}

// RecordLog counts stored or failed plugin log entries
func RecordLog(endpoint string, ok bool, n int) {
	result := "stored"
	if !ok {
		result = "failed"
	}
	logsIngested.WithLabelValues(endpoint, result).Add(float64(n))
}

// RecordUpstream observes a call to a third-party service
func RecordUpstream(service string, ok bool, d time.Duration) {
	upstreamDuration.WithLabelValues(service, strconv.FormatBool(ok)).Observe(d.Seconds())
}
