package article

import (
	"context"
	"net/http"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/handler/http/auth"
	"newsroom-cms/internal/handler/http/pathutil"
	"newsroom-cms/internal/handler/http/respond"
	artUC "newsroom-cms/internal/usecase/article"
)

// The three status transition endpoints share one shape: no request body,
// the new article state in the response. Which transitions are legal from
// which status, and for whom, is entirely the workflow engine's call.

type transitionFunc func(ctx context.Context, caller artUC.Caller, id string) (*entity.Article, error)

func transition(w http.ResponseWriter, r *http.Request, do transitionFunc) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, err)
		return
	}

	art, err := do(r.Context(), auth.CallerFromContext(r.Context()), id)
	if err != nil {
		respond.Domain(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(art))
}

type MarkReadyHandler struct{ Svc *artUC.Service }

// ServeHTTP submits the author's draft for review.
//
// @Summary      Submit for review
// @Tags         articles
// @Security     BearerAuth
// @Param        id path string true "article ID"
// @Success      200 {object} DTO
// @Failure      409 {string} string "not a draft"
// @Router       /articles/{id}/ready [post]
func (h MarkReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	transition(w, r, h.Svc.MarkReady)
}

type PublishHandler struct{ Svc *artUC.Service }

// ServeHTTP publishes a reviewed or deactivated article.
//
// @Summary      Publish article
// @Tags         articles
// @Security     BearerAuth
// @Param        id path string true "article ID"
// @Success      200 {object} DTO
// @Failure      403 {string} string "editor role required"
// @Failure      409 {string} string "not publishable from current status"
// @Router       /articles/{id}/publish [post]
func (h PublishHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	transition(w, r, h.Svc.Publish)
}

type DeactivateHandler struct{ Svc *artUC.Service }

// ServeHTTP withdraws a published article from public view.
//
// @Summary      Deactivate article
// @Tags         articles
// @Security     BearerAuth
// @Param        id path string true "article ID"
// @Success      200 {object} DTO
// @Failure      403 {string} string "editor role required"
// @Failure      409 {string} string "not published"
// @Router       /articles/{id}/deactivate [post]
func (h DeactivateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	transition(w, r, h.Svc.Deactivate)
}
