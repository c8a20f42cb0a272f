package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/observability/metrics"
	"newsroom-cms/internal/repository"
)

// StatsCollector periodically counts the article and section catalogs and
// publishes the results as Prometheus gauges. It is the only writer of the
// articles-by-status and sections-total gauges; handlers never touch them.
type StatsCollector struct {
	articles repository.ArticleRepository
	sections repository.SectionRepository
	interval time.Duration
	logger   *slog.Logger
}

// NewStatsCollector wires a collector against the document store repositories.
func NewStatsCollector(
	articles repository.ArticleRepository,
	sections repository.SectionRepository,
	cfg CollectorConfig,
	logger *slog.Logger,
) *StatsCollector {
	return &StatsCollector{
		articles: articles,
		sections: sections,
		interval: cfg.Interval,
		logger:   logger,
	}
}

// Run collects once immediately, then on every interval tick until the
// context is cancelled. A failed run is logged and counted but never stops
// the loop; the gauges keep their previous values until the store recovers.
func (c *StatsCollector) Run(ctx context.Context) {
	c.logger.Info("stats collector starting", slog.Duration("interval", c.interval))

	c.collectAndRecord(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("stats collector stopped")
			return
		case <-ticker.C:
			c.collectAndRecord(ctx)
		}
	}
}

func (c *StatsCollector) collectAndRecord(ctx context.Context) {
	start := time.Now()
	err := c.collect(ctx)
	recordRun(start, err)
	if err != nil {
		c.logger.Warn("stats collection failed", slog.Any("error", err))
	}
}

// collect counts every status explicitly, including the zero ones, so a
// status whose last article disappears drops its gauge to zero instead of
// freezing at the stale count.
func (c *StatsCollector) collect(ctx context.Context) error {
	articles, err := c.articles.List(ctx)
	if err != nil {
		return fmt.Errorf("list articles: %w", err)
	}

	counts := map[entity.Status]int{
		entity.StatusDraft:          0,
		entity.StatusReadyForReview: 0,
		entity.StatusPublished:      0,
		entity.StatusDeactivated:    0,
	}
	for _, art := range articles {
		counts[art.Status]++
	}
	for status, count := range counts {
		metrics.UpdateArticlesByStatus(status, count)
	}

	sections, err := c.sections.List(ctx)
	if err != nil {
		return fmt.Errorf("list sections: %w", err)
	}
	metrics.UpdateSectionsTotal(len(sections))

	return nil
}
