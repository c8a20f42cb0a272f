package article

import (
	"net/http"

	"newsroom-cms/internal/handler/http/auth"
	"newsroom-cms/internal/handler/http/pathutil"
	"newsroom-cms/internal/handler/http/respond"
	artUC "newsroom-cms/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP removes an article in any status, including published ones. The
// attached image blob is cleaned up best-effort before the document delete.
//
// @Summary      Delete article
// @Tags         articles
// @Security     BearerAuth
// @Param        id path string true "article ID"
// @Success      204 "No Content"
// @Failure      403 {string} string "not deletable by this caller"
// @Failure      404 {string} string "not found"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), auth.CallerFromContext(r.Context()), id); err != nil {
		respond.Domain(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
