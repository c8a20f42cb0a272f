package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Editorial state gauges, updated periodically by the stats collector.
var (
	// ArticlesByStatus tracks how many articles sit in each lifecycle status.
	ArticlesByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "articles_by_status",
			Help: "Number of articles per lifecycle status",
		},
		[]string{"status"},
	)

	// SectionsTotal tracks the size of the section catalog.
	SectionsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sections_total",
			Help: "Number of sections in the registry",
		},
	)
)

// Session metrics, fed by the auth service's session events.
var (
	// SessionsStartedTotal counts successful authentications by role.
	SessionsStartedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sessions_started_total",
			Help: "Successful authentications by role",
		},
		[]string{"role"},
	)
)

// Blob store metrics track the image attachment side channel.
var (
	// BlobOperationsTotal counts blob store calls by operation and result.
	BlobOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blob_operations_total",
			Help: "Blob store operations by type and result",
		},
		[]string{"operation", "result"},
	)
)
