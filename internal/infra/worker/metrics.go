package worker

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectorRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_collector_runs_total",
			Help: "Total stats collector runs, partitioned by result.",
		},
		[]string{"result"},
	)

	collectorDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stats_collector_duration_seconds",
			Help:    "Duration of a single stats collection run.",
			Buckets: prometheus.DefBuckets,
		},
	)

	collectorLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stats_collector_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful collection run.",
		},
	)

	configFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_config_fallbacks_total",
			Help: "Configuration values replaced by their defaults at load time.",
		},
		[]string{"field"},
	)
)

func recordRun(start time.Time, err error) {
	collectorDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		collectorRuns.WithLabelValues("error").Inc()
		return
	}
	collectorRuns.WithLabelValues("success").Inc()
	collectorLastSuccess.SetToCurrentTime()
}

func recordConfigFallback(field string) {
	configFallbacks.WithLabelValues(field).Inc()
}
