package auth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Token requests by role and result.",
		},
		[]string{"role", "result"},
	)

	authDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Time spent validating credentials and issuing a token.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"role"},
	)

	forbiddenAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_forbidden_attempts_total",
			Help: "Requests rejected by the role gate.",
		},
		[]string{"role", "method"},
	)
)

// RecordAuthRequest counts a token request outcome.
func RecordAuthRequest(role, result string) {
	if role == "" {
		role = "unknown"
	}
	authRequestsTotal.WithLabelValues(role, result).Inc()
}

// RecordAuthDuration observes how long a successful token issuance took.
func RecordAuthDuration(role string, d time.Duration) {
	authDuration.WithLabelValues(role).Observe(d.Seconds())
}

// RecordForbiddenAttempt counts a request blocked by the role gate.
func RecordForbiddenAttempt(role, method string) {
	if role == "" {
		role = "public"
	}
	forbiddenAttempts.WithLabelValues(role, method).Inc()
}
