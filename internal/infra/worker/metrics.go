package worker

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WorkerMetrics provides Prometheus metrics for batch run execution.
//
// Metrics:
//   - worker_job_runs_total: Total batch runs by status (success/failure)
//   - worker_job_duration_seconds: Duration histogram of batch runs
//   - worker_job_feeds_processed_total: Total feed sources processed
//   - worker_job_last_success_timestamp: Unix timestamp of last successful run
//   - worker_config_fallbacks_total: Configuration fallbacks by field
type WorkerMetrics struct {
	JobRunsTotal            *prometheus.CounterVec
	JobDurationSeconds      prometheus.Histogram
	JobFeedsProcessedTotal  prometheus.Counter
	JobLastSuccessTimestamp prometheus.Gauge
	ConfigFallbacksTotal    *prometheus.CounterVec
}

// NewWorkerMetrics creates a new WorkerMetrics instance. Metrics are
// registered with the default registry via promauto.
func NewWorkerMetrics() *WorkerMetrics {
	return &WorkerMetrics{
		JobRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_job_runs_total",
			Help: "Total number of batch runs by status (success/failure)",
		}, []string{"status"}),

		JobDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_job_duration_seconds",
			Help:    "Duration of batch run execution in seconds",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800}, // 1s〜30m
		}),

		JobFeedsProcessedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_job_feeds_processed_total",
			Help: "Total number of feed sources processed across all runs",
		}),

		JobLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful batch run",
		}),

		ConfigFallbacksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_config_fallbacks_total",
			Help: "Total number of configuration fallbacks applied by field",
		}, []string{"field"}),
	}
}

// RecordJobRun increments the run counter for the given status
// ("success" or "failure").
func (m *WorkerMetrics) RecordJobRun(status string) {
	m.JobRunsTotal.WithLabelValues(status).Inc()
}

// RecordJobDuration observes the duration of a completed run.
func (m *WorkerMetrics) RecordJobDuration(d time.Duration) {
	m.JobDurationSeconds.Observe(d.Seconds())
}

// RecordFeedsProcessed adds the number of sources processed in a run.
func (m *WorkerMetrics) RecordFeedsProcessed(n int) {
	m.JobFeedsProcessedTotal.Add(float64(n))
}

// RecordLastSuccess marks the current time as the last successful run.
func (m *WorkerMetrics) RecordLastSuccess() {
	m.JobLastSuccessTimestamp.SetToCurrentTime()
}

// RecordConfigFallback increments the fallback counter for a config field.
func (m *WorkerMetrics) RecordConfigFallback(field string) {
	m.ConfigFallbacksTotal.WithLabelValues(field).Inc()
}
