// Package metrics collects Prometheus metrics for the task API and exposes
// them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels shared by the counters below.
const (
	OutcomeOK      = "ok"
	OutcomeMiss    = "miss"
	OutcomeError   = "error"
	OutcomeDenied  = "denied"
	OutcomeLimited = "limited"
)

// Recorder is the subset of Collector used by instrumented components.
type Recorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
	RecordTaskOperation(op, outcome string, duration time.Duration)
	RecordLogin(outcome string)
}

// Collector holds the application's Prometheus metrics.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	taskOps      *prometheus.CounterVec
	taskLatency  *prometheus.HistogramVec
	logins       *prometheus.CounterVec
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskboard_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "taskboard_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		taskOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskboard_task_operations_total",
			Help: "Task store operations by operation and outcome.",
		}, []string{"op", "outcome"}),
		taskLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "taskboard_task_operation_duration_seconds",
			Help:    "Task store operation latency in seconds, including simulated latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskboard_login_attempts_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(c.httpRequests, c.httpLatency, c.taskOps, c.taskLatency, c.logins)
	return c
}

// RegisterTaskCount exposes the current collection size as a gauge.
func (c *Collector) RegisterTaskCount(reg prometheus.Registerer, count func() int) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "taskboard_tasks",
		Help: "Number of tasks currently in the collection.",
	}, func() float64 { return float64(count()) }))
}

// RecordHTTPRequest records one served request.
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordTaskOperation records one task store call.
func (c *Collector) RecordTaskOperation(op, outcome string, duration time.Duration) {
	c.taskOps.WithLabelValues(op, outcome).Inc()
	c.taskLatency.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordLogin records one login attempt.
func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

// Handler returns the HTTP handler Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
