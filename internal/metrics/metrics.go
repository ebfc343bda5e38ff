// Package metrics exposes prometheus counters for the console server and
// the extraction pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shelf"

type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	extractFilesTotal *prometheus.CounterVec
	extractDuration   prometheus.Histogram
	extractedItems    *prometheus.CounterVec
	batchesTotal      prometheus.Counter
	batchFiles        prometheus.Histogram
	approvalsTotal    *prometheus.CounterVec
	storeReloadsTotal *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests processed by the console server.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "in_flight_requests",
				Help:      "Number of in-flight HTTP requests.",
			},
		),
		extractFilesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "extract",
				Name:      "files_total",
				Help:      "Photos submitted for extraction by outcome.",
			},
			[]string{"outcome"},
		),
		extractDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "extract",
				Name:      "duration_seconds",
				Help:      "Per-photo extraction round trip in seconds.",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
			},
		),
		extractedItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "extract",
				Name:      "items_total",
				Help:      "Items extracted from successful photos.",
			},
			[]string{"kind"},
		),
		batchesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "extract",
				Name:      "batches_total",
				Help:      "Completed upload batches.",
			},
		),
		batchFiles: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "extract",
				Name:      "batch_files",
				Help:      "Photos per upload batch.",
				Buckets:   []float64{1, 2, 3, 5, 8, 10},
			},
		),
		approvalsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "review",
				Name:      "approvals_total",
				Help:      "Review approvals by outcome.",
			},
			[]string{"outcome"},
		),
		storeReloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "reloads_total",
				Help:      "Store list reloads by outcome.",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(
		m.requestTotal,
		m.requestDuration,
		m.requestInFlight,
		m.extractFilesTotal,
		m.extractDuration,
		m.extractedItems,
		m.batchesTotal,
		m.batchFiles,
		m.approvalsTotal,
		m.storeReloadsTotal,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests and for registering extra collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records request counts and latency per matched route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveExtraction records one photo's round trip
func (m *Metrics) ObserveExtraction(success bool, duration time.Duration, count, pendingReview int) {
	outcome := "failed"
	if success {
		outcome = "succeeded"
	}
	m.extractFilesTotal.WithLabelValues(outcome).Inc()
	m.extractDuration.Observe(duration.Seconds())
	if !success {
		return
	}
	if pendingReview > 0 {
		m.extractedItems.WithLabelValues("pending_review").Add(float64(pendingReview))
	}
	if auto := count - pendingReview; auto > 0 {
		m.extractedItems.WithLabelValues("auto_approved").Add(float64(auto))
	}
}

// ObserveBatch records a finished batch
func (m *Metrics) ObserveBatch(files int) {
	m.batchesTotal.Inc()
	m.batchFiles.Observe(float64(files))
}

// ObserveApproval records an approve attempt
func (m *Metrics) ObserveApproval(err error) {
	m.approvalsTotal.WithLabelValues(outcomeOf(err)).Inc()
}

// ObserveStoreReload records a store list reload
func (m *Metrics) ObserveStoreReload(err error) {
	m.storeReloadsTotal.WithLabelValues(outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	if err != nil {
		return "failed"
	}
	return "succeeded"
}
