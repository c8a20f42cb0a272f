// Package slo tracks the service level objectives of the API surface:
// availability and error rate, computed in-process from request outcomes and
// exported as gauges for alerting.
package slo

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SLO targets. Alert rules compare the exported gauges against these.
const (
	// AvailabilityTarget is the target success ratio (99.9%).
	AvailabilityTarget = 0.999

	// ErrorRateTarget is the maximum acceptable 5xx ratio (0.1%).
	ErrorRateTarget = 0.001
)

var (
	availability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_availability_ratio",
			Help: "Availability ratio over the last window (0-1), target 0.999",
		},
	)

	errorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_error_rate_ratio",
			Help: "5xx error ratio over the last window (0-1), target 0.001",
		},
	)
)

// Tracker accumulates request outcomes and periodically publishes the window
// ratios. All methods are safe for concurrent use.
type Tracker struct {
	total  atomic.Int64
	errors atomic.Int64
}

// NewTracker returns an idle tracker. Call Run to start publishing.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record counts one finished request. Only 5xx responses count against the
// objectives: a 4xx is the client's problem, not an availability failure.
func (t *Tracker) Record(statusCode int) {
	t.total.Add(1)
	if statusCode >= 500 {
		t.errors.Add(1)
	}
}

// Run publishes the window ratios every interval and resets the window,
// until ctx is cancelled. A window with no traffic reports full availability
// rather than NaN.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.publish()
		}
	}
}

func (t *Tracker) publish() {
	total := t.total.Swap(0)
	errs := t.errors.Swap(0)
	if total == 0 {
		availability.Set(1)
		errorRate.Set(0)
		return
	}
	ratio := float64(errs) / float64(total)
	availability.Set(1 - ratio)
	errorRate.Set(ratio)
}
