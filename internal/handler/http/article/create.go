package article

import (
	"net/http"

	"newsroom-cms/internal/handler/http/auth"
	"newsroom-cms/internal/handler/http/respond"
	artUC "newsroom-cms/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates a new article in draft status. Accepts JSON or, when an
// image is attached, multipart/form-data.
//
// @Summary      Create article
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201 {object} DTO
// @Failure      400 {string} string "invalid input"
// @Failure      401 {string} string "authentication required"
// @Failure      403 {string} string "only reporters create articles"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, err := parseCreateRequest(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Create(r.Context(), auth.CallerFromContext(r.Context()), in)
	if err != nil {
		respond.Domain(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(art))
}
