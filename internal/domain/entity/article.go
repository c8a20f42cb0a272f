// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Article,
// Section and Principal, along with their validation rules and domain-specific
// errors.
package entity

import "time"

// Status is the publication status of an article. It is a closed set: every
// status mutation in the system goes through the workflow engine, which is the
// single authority on which transitions are legal.
type Status string

const (
	// StatusDraft is the initial status of every article. Content is editable
	// by the authoring reporter only.
	StatusDraft Status = "draft"
	// StatusReadyForReview marks an article as finished by its author and
	// waiting in the editor review queue. Content is frozen.
	StatusReadyForReview Status = "ready_for_review"
	// StatusPublished makes an article visible to the public.
	StatusPublished Status = "published"
	// StatusDeactivated withdraws a published article. Editors may edit the
	// content or publish it again.
	StatusDeactivated Status = "deactivated"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusReadyForReview, StatusPublished, StatusDeactivated:
		return true
	}
	return false
}

// Article represents a single news item with a publication lifecycle.
// ID is opaque and assigned by the store at creation. AuthorID and CreatedAt
// are immutable after creation; UpdatedAt is touched on every mutation.
//
// ImageURL and ImageKey are set or cleared together, never one without the
// other: ImageURL is the externally resolvable display address and ImageKey is
// the opaque handle the media service needs to replace or delete the blob.
type Article struct {
	ID        string
	Title     string
	Subtitle  string
	Body      string
	Section   string
	AuthorID  string
	Status    Status
	ImageURL  string
	ImageKey  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the article's field invariants. It verifies the required
// text fields with their length ceilings, the status value, and the image
// fields pairing.
func (a *Article) Validate() error {
	if err := ValidateTitle(a.Title); err != nil {
		return err
	}
	if err := ValidateSubtitle(a.Subtitle); err != nil {
		return err
	}
	if a.Body == "" {
		return &ValidationError{Field: "body", Message: "is required"}
	}
	if a.AuthorID == "" {
		return &ValidationError{Field: "authorID", Message: "is required"}
	}
	if !a.Status.Valid() {
		return &ValidationError{Field: "status", Message: "unknown status " + string(a.Status)}
	}
	return ValidateImageRef(a.ImageURL, a.ImageKey)
}

// HasImage reports whether the article carries an image attachment.
func (a *Article) HasImage() bool {
	return a.ImageKey != ""
}
