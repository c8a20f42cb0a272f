// Package media coordinates the single image attachment an article may carry.
// It reconciles create/replace/delete against the external blob store so that
// an article never references a missing image: uploads happen before deletes,
// and cleanup failures are logged and swallowed rather than surfaced.
package media

import "errors"

// ErrUploadFailed indicates the blob upload itself failed. This is the one
// media failure that must abort the enclosing save: persisting an article
// whose image reference points at nothing is worse than rejecting the edit.
var ErrUploadFailed = errors.New("image upload failed")
