// Package article provides use cases for the editorial article lifecycle.
// It orchestrates the workflow engine, the visibility filter, the media
// service and the article repository; it never decides transition legality
// itself.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found,
	// or is not visible to the caller. Reads outside a caller's visibility
	// deliberately look identical to absence.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is empty or
	// malformed.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
