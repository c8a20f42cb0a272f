package article

import (
	"log/slog"
	"net/http"

	"newsroom-cms/internal/common/pagination"
	"newsroom-cms/internal/handler/http/auth"
	artUC "newsroom-cms/internal/usecase/article"
)

// Register wires all article routes into the mux. Reads are open to
// anonymous callers with optional authentication — who is asking changes
// what they see. Writes require a session. The review queue also only
// requires a session: non-editors get an empty queue from the service, the
// queue being invisible to them rather than forbidden.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /articles", auth.Optional(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))
	mux.Handle("GET /articles/pending", auth.Require(PendingHandler{svc}))
	mux.Handle("GET /articles/{id}", auth.Optional(GetHandler{svc}))

	mux.Handle("POST /articles", auth.Require(CreateHandler{svc}))
	mux.Handle("PUT /articles/{id}", auth.Require(UpdateHandler{svc}))
	mux.Handle("DELETE /articles/{id}", auth.Require(DeleteHandler{svc}))

	mux.Handle("POST /articles/{id}/ready", auth.Require(MarkReadyHandler{svc}))
	mux.Handle("POST /articles/{id}/publish", auth.Require(PublishHandler{svc}))
	mux.Handle("POST /articles/{id}/deactivate", auth.Require(DeactivateHandler{svc}))
}
