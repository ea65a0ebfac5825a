package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	messagesSent *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	jobRuns      *prometheus.CounterVec
	lastPrice    *prometheus.GaugeVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		messagesSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifier_messages_sent_total",
				Help: "Total number of messages delivered to Telegram",
			},
			[]string{"job"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifier_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		jobRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifier_job_runs_total",
				Help: "Scheduled job executions by outcome",
			},
			[]string{"job", "status"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "notifier_last_price",
				Help: "Last quoted price for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "notifier_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordMessageSent records one delivered message for a job.
func (r *Recorder) RecordMessageSent(job string) {
	r.messagesSent.WithLabelValues(job).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordJobRun records one scheduled job execution with its outcome.
func (r *Recorder) RecordJobRun(job, status string) {
	r.jobRuns.WithLabelValues(job, status).Inc()
}

// RecordLastPrice records the last quoted price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
