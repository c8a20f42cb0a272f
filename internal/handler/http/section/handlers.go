package section

import (
	"encoding/json"
	"net/http"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/handler/http/pathutil"
	"newsroom-cms/internal/handler/http/respond"
	secUC "newsroom-cms/internal/usecase/section"
)

type ListHandler struct{ Svc *secUC.Service }

// ServeHTTP lists all sections ordered by name, including inactive ones.
//
// @Summary      List sections
// @Tags         sections
// @Produce      json
// @Success      200 {array} DTO
// @Router       /sections [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sections, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Domain(w, err)
		return
	}
	dtos := make([]DTO, 0, len(sections))
	for _, s := range sections {
		dtos = append(dtos, toDTO(s))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

type CreateHandler struct{ Svc *secUC.Service }

// ServeHTTP creates a section. Status defaults to active when omitted.
//
// @Summary      Create section
// @Tags         sections
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201 {object} DTO
// @Failure      400 {string} string "invalid input"
// @Failure      403 {string} string "editor role required"
// @Router       /sections [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	sec, err := h.Svc.Create(r.Context(), secUC.CreateInput{
		Name:   req.Name,
		Status: entity.SectionStatus(req.Status),
	})
	if err != nil {
		respond.Domain(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(sec))
}

type UpdateHandler struct{ Svc *secUC.Service }

// ServeHTTP renames a section or toggles its status. Absent fields are left
// unchanged; the toggle has no effect on referencing articles.
//
// @Summary      Update section
// @Tags         sections
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "section ID"
// @Success      200 {object} DTO
// @Failure      400 {string} string "invalid input"
// @Failure      404 {string} string "not found"
// @Router       /sections/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name   *string `json:"name"`
		Status *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	in := secUC.UpdateInput{ID: id, Name: req.Name}
	if req.Status != nil {
		status := entity.SectionStatus(*req.Status)
		in.Status = &status
	}

	sec, err := h.Svc.Update(r.Context(), in)
	if err != nil {
		respond.Domain(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(sec))
}

type DeleteHandler struct{ Svc *secUC.Service }

// ServeHTTP removes a section. Articles referencing it keep the dangling
// name; there is no cascade.
//
// @Summary      Delete section
// @Tags         sections
// @Security     BearerAuth
// @Param        id path string true "section ID"
// @Success      204 "No Content"
// @Failure      404 {string} string "not found"
// @Router       /sections/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Domain(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
