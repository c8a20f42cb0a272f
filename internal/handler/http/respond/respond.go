// Package respond provides utilities for sending HTTP responses in JSON format.
// It maps domain errors to status codes and sanitizes messages to prevent
// leaking sensitive information.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/domain/workflow"
	"newsroom-cms/internal/repository"
	authservice "newsroom-cms/internal/service/auth"
	articleUC "newsroom-cms/internal/usecase/article"
	"newsroom-cms/internal/usecase/media"
	sectionUC "newsroom-cms/internal/usecase/section"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers already sent, can only log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// Domain maps a usecase or workflow error to its HTTP status and writes the
// response. Validation failures and editorial rule violations carry messages
// that are safe for callers; everything unrecognized is masked as an internal
// error with the detail logged.
func Domain(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	var validationErr *entity.ValidationError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, articleUC.ErrInvalidArticleID),
		errors.Is(err, sectionUC.ErrInvalidSectionID):
		Error(w, http.StatusBadRequest, err)
	case errors.Is(err, authservice.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, err)
	case errors.Is(err, workflow.ErrForbidden):
		Error(w, http.StatusForbidden, err)
	case errors.Is(err, articleUC.ErrArticleNotFound),
		errors.Is(err, sectionUC.ErrSectionNotFound),
		errors.Is(err, entity.ErrNotFound):
		Error(w, http.StatusNotFound, err)
	case errors.Is(err, workflow.ErrInvalidTransition):
		Error(w, http.StatusConflict, err)
	case errors.Is(err, media.ErrUploadFailed):
		Error(w, http.StatusBadGateway, errors.New("image upload failed"))
	case errors.Is(err, repository.ErrStoreUnavailable),
		errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, gobreaker.ErrTooManyRequests):
		Error(w, http.StatusServiceUnavailable, errors.New("service temporarily unavailable"))
	default:
		slog.Default().Error("internal server error",
			slog.Any("error", SanitizeError(err)))
		Error(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

// SafeError sanitizes transport-level errors before returning them to users.
// Client errors pass through; server errors are logged and replaced with a
// generic message. Handlers use Domain for usecase errors and this for
// failures such as body decoding.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	if code >= 500 {
		slog.Default().Error("internal server error",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.Any("error", SanitizeError(err)))
		Error(w, code, errors.New("internal server error"))
		return
	}
	Error(w, code, err)
}
