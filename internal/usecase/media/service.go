package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/observability/metrics"
	"newsroom-cms/internal/repository"
)

// Upload is a new image file offered for attachment.
type Upload struct {
	Content io.Reader
	Name    string
}

// Service manages the image attachment of an article against the external
// blob store.
type Service struct {
	Blobs  repository.BlobStore
	Logger *slog.Logger
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Attach reconciles the article's image with the offered upload and mutates
// the article's ImageURL/ImageKey pair in place. The article is not persisted
// here; the caller owns the document write.
//
// A nil upload leaves any existing attachment untouched, so Attach is
// idempotent under "no new file". With an upload present the new blob is
// stored first and only then is the previous key deleted: if the delete step
// fails the article still holds a valid new image, and the stale blob leak is
// logged and tolerated. An upload failure returns ErrUploadFailed and leaves
// the article unchanged; the caller must abort the save.
func (s *Service) Attach(ctx context.Context, article *entity.Article, upload *Upload) error {
	if upload == nil {
		return nil
	}

	ref, err := s.Blobs.Upload(ctx, upload.Content, upload.Name)
	metrics.RecordBlobOperation("upload", err)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	previousKey := article.ImageKey
	article.ImageURL = ref.URL
	article.ImageKey = ref.Key

	if previousKey != "" {
		err := s.Blobs.Delete(ctx, previousKey)
		metrics.RecordBlobOperation("delete", err)
		if err != nil {
			// Stale blob leak: accepted, never blocks the update.
			s.logger().Warn("failed to delete replaced image blob",
				slog.String("article_id", article.ID),
				slog.String("blob_key", previousKey),
				slog.Any("error", err))
		}
	}
	return nil
}

// Detach removes the article's attachment, clearing both image fields
// together. The blob delete is best-effort: a failure is logged and swallowed
// so article deletion is never blocked on storage cleanup.
func (s *Service) Detach(ctx context.Context, article *entity.Article) {
	if !article.HasImage() {
		return
	}
	err := s.Blobs.Delete(ctx, article.ImageKey)
	metrics.RecordBlobOperation("delete", err)
	if err != nil {
		s.logger().Warn("failed to delete image blob on detach",
			slog.String("article_id", article.ID),
			slog.String("blob_key", article.ImageKey),
			slog.Any("error", err))
	}
	article.ImageURL = ""
	article.ImageKey = ""
}
