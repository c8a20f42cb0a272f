package article

import (
	"net/http"

	"newsroom-cms/internal/handler/http/auth"
	"newsroom-cms/internal/handler/http/respond"
	artUC "newsroom-cms/internal/usecase/article"
)

type PendingHandler struct{ Svc *artUC.Service }

// ServeHTTP returns the editor review queue: articles in ready_for_review,
// newest created first. Non-editors receive an empty list — the queue is
// invisible to them, not forbidden.
//
// @Summary      Review queue
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO
// @Failure      401 {string} string "authentication required"
// @Router       /articles/pending [get]
func (h PendingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.PendingReview(r.Context(), auth.CallerFromContext(r.Context()))
	if err != nil {
		respond.Domain(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
