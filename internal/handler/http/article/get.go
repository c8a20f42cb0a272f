package article

import (
	"net/http"

	"newsroom-cms/internal/handler/http/auth"
	"newsroom-cms/internal/handler/http/pathutil"
	"newsroom-cms/internal/handler/http/respond"
	artUC "newsroom-cms/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP returns a single article, subject to the caller's visibility.
// Articles outside it read as 404, never 403.
//
// @Summary      Get article
// @Tags         articles
// @Produce      json
// @Param        id path string true "article ID"
// @Success      200 {object} DTO
// @Failure      404 {string} string "not found"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, err)
		return
	}

	art, err := h.Svc.Get(r.Context(), auth.CallerFromContext(r.Context()), id)
	if err != nil {
		respond.Domain(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(art))
}
