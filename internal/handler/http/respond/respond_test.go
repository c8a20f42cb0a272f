package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sony/gobreaker"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/domain/workflow"
	"newsroom-cms/internal/handler/http/respond"
	"newsroom-cms/internal/repository"
	authservice "newsroom-cms/internal/service/auth"
	articleUC "newsroom-cms/internal/usecase/article"
	"newsroom-cms/internal/usecase/media"
	sectionUC "newsroom-cms/internal/usecase/section"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.JSON(rec, http.StatusCreated, map[string]string{"id": "a1"})

	if rec.Code != http.StatusCreated {
		t.Errorf("code = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %s", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["id"] != "a1" {
		t.Errorf("body = %v", body)
	}
}

func TestJSONNilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.JSON(rec, http.StatusNoContent, nil)
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}

func TestDomainStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation error", &entity.ValidationError{Field: "title", Message: "is required"}, http.StatusBadRequest},
		{"invalid article id", articleUC.ErrInvalidArticleID, http.StatusBadRequest},
		{"invalid section id", sectionUC.ErrInvalidSectionID, http.StatusBadRequest},
		{"bad credentials", authservice.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", &workflow.ForbiddenError{Role: entity.RolePublic, Action: workflow.ActionCreate}, http.StatusForbidden},
		{"article not found", articleUC.ErrArticleNotFound, http.StatusNotFound},
		{"section not found", sectionUC.ErrSectionNotFound, http.StatusNotFound},
		{"invalid transition", &workflow.InvalidTransitionError{Role: entity.RoleEditor, From: entity.StatusDraft, Action: workflow.ActionPublish}, http.StatusConflict},
		{"upload failed", fmt.Errorf("%w: gateway timeout", media.ErrUploadFailed), http.StatusBadGateway},
		{"store unavailable", fmt.Errorf("List: %w: dial refused", repository.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"circuit open", gobreaker.ErrOpenState, http.StatusServiceUnavailable},
		{"unknown error", errors.New("some internal detail"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respond.Domain(rec, tt.err)
			if rec.Code != tt.code {
				t.Errorf("code = %d, want %d", rec.Code, tt.code)
			}
		})
	}
}

func TestDomainMasksInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Domain(rec, errors.New("pq: relation articles does not exist"))

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Errorf("internal detail leaked: %q", body["error"])
	}
}

func TestSafeErrorMasksServerErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.SafeError(rec, http.StatusInternalServerError,
		errors.New("postgres://admin:hunter2@db:5432 unreachable"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("code = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Errorf("detail leaked: %q", body["error"])
	}
}

func TestSafeErrorPassesClientErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.SafeError(rec, http.StatusBadRequest, errors.New("title is required"))

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "title is required" {
		t.Errorf("body = %v", body)
	}
}
