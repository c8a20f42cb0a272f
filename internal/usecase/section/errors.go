// Package section provides use cases for the section registry: a plain
// catalog of named categories with an active/inactive flag. Sections carry no
// transition rules, and deleting one performs no cleanup of referencing
// articles.
package section

import "errors"

// Sentinel errors for section use case operations.
var (
	// ErrSectionNotFound indicates that the requested section was not found.
	ErrSectionNotFound = errors.New("section not found")

	// ErrInvalidSectionID indicates that the provided section ID is empty.
	ErrInvalidSectionID = errors.New("invalid section ID")
)
