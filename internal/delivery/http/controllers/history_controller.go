package controllers

import (
	"log/slog"
	"net/http"

	"gameonbaby/internal/delivery/http/helpers"
	"gameonbaby/internal/domain"
)

// HistoryListResponse is the success envelope for the paginated history log.
type HistoryListResponse struct {
	helpers.Response
	Entries    []*domain.HistoryEntry `json:"entries"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

type HistoryController struct {
	Logger  *slog.Logger
	Service domain.HistoryService
}

func NewHistoryController(logger *slog.Logger, svc domain.HistoryService) *HistoryController {
	return &HistoryController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List registration and event history
// @Description Append-only audit log, newest first.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.HistoryListResponse
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/admin/history [get]
func (c *HistoryController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	entries, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if entries == nil {
		entries = []*domain.HistoryEntry{}
	}
	helpers.WriteJSON(w, http.StatusOK, HistoryListResponse{
		Response:   helpers.OK(),
		Entries:    entries,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
