package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/observability/metrics"
)

type stubArticles struct {
	articles []*entity.Article
	err      error
}

func (s *stubArticles) Create(context.Context, *entity.Article) error { return nil }
func (s *stubArticles) Get(context.Context, string) (*entity.Article, error) {
	return nil, nil
}
func (s *stubArticles) List(context.Context) ([]*entity.Article, error) {
	return s.articles, s.err
}
func (s *stubArticles) ListByAuthor(context.Context, string) ([]*entity.Article, error) {
	return nil, nil
}
func (s *stubArticles) ListByStatus(context.Context, entity.Status) ([]*entity.Article, error) {
	return nil, nil
}
func (s *stubArticles) Update(context.Context, *entity.Article) error { return nil }
func (s *stubArticles) Delete(context.Context, string) error          { return nil }

type stubSections struct {
	sections []*entity.Section
	err      error
}

func (s *stubSections) Create(context.Context, *entity.Section) error { return nil }
func (s *stubSections) Get(context.Context, string) (*entity.Section, error) {
	return nil, nil
}
func (s *stubSections) List(context.Context) ([]*entity.Section, error) {
	return s.sections, s.err
}
func (s *stubSections) Update(context.Context, *entity.Section) error { return nil }
func (s *stubSections) Delete(context.Context, string) error          { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCollectPublishesGauges(t *testing.T) {
	arts := &stubArticles{articles: []*entity.Article{
		{Status: entity.StatusDraft},
		{Status: entity.StatusDraft},
		{Status: entity.StatusPublished},
	}}
	secs := &stubSections{sections: []*entity.Section{
		{Name: "politics"}, {Name: "sports"},
	}}

	c := NewStatsCollector(arts, secs, DefaultCollectorConfig(), discardLogger())
	if err := c.collect(context.Background()); err != nil {
		t.Fatalf("collect: %v", err)
	}

	if got := testutil.ToFloat64(metrics.ArticlesByStatus.WithLabelValues("draft")); got != 2 {
		t.Errorf("draft gauge = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.ArticlesByStatus.WithLabelValues("published")); got != 1 {
		t.Errorf("published gauge = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.ArticlesByStatus.WithLabelValues("deactivated")); got != 0 {
		t.Errorf("deactivated gauge = %v, want 0", got)
	}
	if got := testutil.ToFloat64(metrics.SectionsTotal); got != 2 {
		t.Errorf("sections gauge = %v, want 2", got)
	}
}

func TestCollectZeroesVacatedStatus(t *testing.T) {
	arts := &stubArticles{articles: []*entity.Article{{Status: entity.StatusPublished}}}
	secs := &stubSections{}
	c := NewStatsCollector(arts, secs, DefaultCollectorConfig(), discardLogger())

	if err := c.collect(context.Background()); err != nil {
		t.Fatalf("collect: %v", err)
	}

	arts.articles = nil
	if err := c.collect(context.Background()); err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got := testutil.ToFloat64(metrics.ArticlesByStatus.WithLabelValues("published")); got != 0 {
		t.Errorf("published gauge = %v, want 0 after the article is gone", got)
	}
}

func TestCollectStoreFailure(t *testing.T) {
	arts := &stubArticles{err: errors.New("connection refused")}
	c := NewStatsCollector(arts, &stubSections{}, DefaultCollectorConfig(), discardLogger())

	if err := c.collect(context.Background()); err == nil {
		t.Fatal("expected error when the article listing fails")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := DefaultCollectorConfig()
	cfg.Interval = minCollectInterval
	c := NewStatsCollector(&stubArticles{}, &stubSections{}, cfg, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	cancel()
	<-done
}
