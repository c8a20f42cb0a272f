package article

import (
	"net/http"

	"newsroom-cms/internal/handler/http/auth"
	"newsroom-cms/internal/handler/http/pathutil"
	"newsroom-cms/internal/handler/http/respond"
	artUC "newsroom-cms/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP edits article content. Absent fields are left unchanged; content
// edits never move the status. Accepts JSON or multipart/form-data for image
// replacement.
//
// @Summary      Update article
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "article ID"
// @Success      200 {object} DTO
// @Failure      400 {string} string "invalid input"
// @Failure      403 {string} string "not editable by this caller"
// @Failure      404 {string} string "not found"
// @Router       /articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, err)
		return
	}

	in, err := parseUpdateRequest(r, id)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Update(r.Context(), auth.CallerFromContext(r.Context()), in)
	if err != nil {
		respond.Domain(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(art))
}
