// Package metrics exposes Prometheus counters for the record workflow.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "foodwatch"

// Attachment operations counted by AttachmentOp.
const (
	OpStaged   = "staged"
	OpPromoted = "promoted"
	OpDetached = "detached"
	OpPurged   = "purged"
	OpReaped   = "reaped"
)

// Metrics holds the collectors of one process. Each instance owns its
// registry so tests can build as many as they like.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	recordWrites    *prometheus.CounterVec
	attachments     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		recordWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "record_writes_total",
			Help:      "Committed record writes by kind and operation.",
		}, []string{"kind", "op"}),
		attachments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attachment_operations_total",
			Help:      "Attachment file operations by owner kind.",
		}, []string{"owner", "op"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.recordWrites,
		m.attachments,
	)
	return m
}

// ObserveRequest records one served request. route is the matched route
// template, not the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordWrite counts a committed create, update or delete.
func (m *Metrics) RecordWrite(kind, op string) {
	m.recordWrites.WithLabelValues(kind, op).Inc()
}

// AttachmentOp counts n files handled by op for owner. owner is empty for
// staging operations.
func (m *Metrics) AttachmentOp(owner, op string, n int) {
	if n <= 0 {
		return
	}
	if owner == "" {
		owner = "staging"
	}
	m.attachments.WithLabelValues(owner, op).Add(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
