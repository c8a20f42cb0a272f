package entity

import (
	"fmt"

	"newsroom-cms/internal/utils/text"
)

// Field length ceilings, in runes. They bound store documents, not editorial
// policy.
const (
	maxTitleLength    = 300
	maxSubtitleLength = 500
)

// ValidateImageRef enforces the image pairing invariant: url and key are set
// together or cleared together, never one without the other. A url with no key
// would leave a blob nothing can delete; a key with no url would render nothing.
func ValidateImageRef(url, key string) error {
	if (url == "") != (key == "") {
		return &ValidationError{
			Field:   "image",
			Message: "imageURL and imageKey must be set or cleared together",
		}
	}
	return nil
}

// ValidateTitle checks a title for presence and length.
func ValidateTitle(title string) error {
	if title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if text.CountRunes(title) > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must not exceed %d characters", maxTitleLength),
		}
	}
	return nil
}

// ValidateSubtitle checks a subtitle for presence and length.
func ValidateSubtitle(subtitle string) error {
	if subtitle == "" {
		return &ValidationError{Field: "subtitle", Message: "is required"}
	}
	if text.CountRunes(subtitle) > maxSubtitleLength {
		return &ValidationError{
			Field:   "subtitle",
			Message: fmt.Sprintf("must not exceed %d characters", maxSubtitleLength),
		}
	}
	return nil
}
