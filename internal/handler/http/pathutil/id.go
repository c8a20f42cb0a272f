// Package pathutil provides helpers for working with URL paths: extracting
// document IDs from route patterns and normalizing paths for metrics labels.
package pathutil

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID in the URL path is missing or malformed.
var ErrInvalidID = errors.New("invalid id")

// ID extracts the named path value and validates it as a document ID.
// Document IDs are opaque UUIDs assigned by the store.
//
// Example:
//
//	mux.Handle("GET /articles/{id}", h)
//	id, err := pathutil.ID(r, "id")
func ID(r *http.Request, name string) (string, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return "", ErrInvalidID
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", ErrInvalidID
	}
	return raw, nil
}
