// Package worker runs the background side of the service: a periodic stats
// collector that publishes editorial gauges, and the health probe server the
// orchestrator polls. Both are supervised from main and stop on context
// cancellation.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	pkgcfg "newsroom-cms/pkg/config"
)

// Collector interval bounds. A sub-second interval would hammer the document
// store for gauges nobody reads that fast; anything above an hour makes the
// dashboards useless.
const (
	minCollectInterval = time.Second
	maxCollectInterval = time.Hour
)

// CollectorConfig holds the stats collector settings.
type CollectorConfig struct {
	// Interval between collection runs.
	Interval time.Duration

	// HealthAddr is the listen address of the health probe server.
	HealthAddr string
}

// DefaultCollectorConfig returns production defaults: collect every minute,
// probes on :9091.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		Interval:   time.Minute,
		HealthAddr: ":9091",
	}
}

// Validate checks the configuration bounds.
func (c *CollectorConfig) Validate() error {
	if err := pkgcfg.ValidateDurationRange(c.Interval, minCollectInterval, maxCollectInterval); err != nil {
		return fmt.Errorf("collect interval: %w", err)
	}
	if c.HealthAddr == "" {
		return fmt.Errorf("health addr must not be empty")
	}
	return nil
}

// LoadCollectorConfigFromEnv reads the collector settings from the
// environment, falling back to defaults field by field when a value is
// missing or out of range. Loading never fails: an invalid value is logged,
// counted, and replaced by its default, so a typo in one variable cannot keep
// the service from starting.
//
// Environment variables:
//   - STATS_INTERVAL: duration string, e.g. "30s" (default "1m")
//   - WORKER_HEALTH_PORT: port for the probe server (default 9091)
func LoadCollectorConfigFromEnv(logger *slog.Logger) CollectorConfig {
	cfg := DefaultCollectorConfig()

	interval := pkgcfg.GetEnvDuration("STATS_INTERVAL", cfg.Interval)
	if err := pkgcfg.ValidateDurationRange(interval, minCollectInterval, maxCollectInterval); err != nil {
		logger.Warn("invalid STATS_INTERVAL, using default",
			slog.Duration("value", interval),
			slog.Duration("default", cfg.Interval),
			slog.Any("error", err))
		recordConfigFallback("stats_interval")
	} else {
		cfg.Interval = interval
	}

	port := pkgcfg.GetEnvInt("WORKER_HEALTH_PORT", 9091)
	if port < 1024 || port > 65535 {
		logger.Warn("invalid WORKER_HEALTH_PORT, using default",
			slog.Int("value", port),
			slog.String("default", cfg.HealthAddr))
		recordConfigFallback("worker_health_port")
	} else {
		cfg.HealthAddr = fmt.Sprintf(":%d", port)
	}

	return cfg
}
