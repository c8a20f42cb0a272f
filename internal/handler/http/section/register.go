package section

import (
	"net/http"

	"newsroom-cms/internal/handler/http/auth"
	secUC "newsroom-cms/internal/usecase/section"
)

// Register wires the section routes into the mux. The catalog is readable by
// anyone; every write goes through the editor gate.
func Register(mux *http.ServeMux, svc *secUC.Service) {
	mux.Handle("GET /sections", ListHandler{svc})

	mux.Handle("POST /sections", auth.RequireEditor(CreateHandler{svc}))
	mux.Handle("PUT /sections/{id}", auth.RequireEditor(UpdateHandler{svc}))
	mux.Handle("DELETE /sections/{id}", auth.RequireEditor(DeleteHandler{svc}))
}
