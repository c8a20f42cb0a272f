package article

import (
	"log/slog"
	"net/http"
	"time"

	"newsroom-cms/internal/common/pagination"
	"newsroom-cms/internal/handler/http/auth"
	"newsroom-cms/internal/handler/http/respond"
	"newsroom-cms/internal/observability/logging"
	artUC "newsroom-cms/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP returns the caller's view of the article set, paginated. Editors
// see everything, reporters their own work plus the published set, anonymous
// readers only what is published. The visibility filter runs before paging,
// so page boundaries are stable within one view.
//
// @Summary      List articles
// @Tags         articles
// @Produce      json
// @Param        page   query int false "page number (1-based)" default(1)
// @Param        limit  query int false "items per page" default(20)
// @Success      200 {object} pagination.Response[DTO]
// @Failure      400 {string} string "invalid query parameters"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	caller := auth.CallerFromContext(ctx)
	articles, err := h.Svc.List(ctx, caller)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list articles",
			slog.Any("error", err),
			slog.Int("page", params.Page))
		pagination.RecordError("store")
		respond.Domain(w, err)
		return
	}

	page, meta := pagination.Slice(toDTOs(articles), params)

	duration := time.Since(start)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(meta.Total)

	logger.InfoContext(ctx, "article list",
		slog.String("role", string(caller.Role)),
		slog.Int("page", params.Page),
		slog.Int("returned", len(page)),
		slog.Int64("duration_ms", duration.Milliseconds()))

	respond.JSON(w, http.StatusOK, pagination.NewResponse(page, meta))
}
