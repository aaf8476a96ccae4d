package activity

import (
	"net/http"
	"strconv"

	"github.com/moonbarber/MB-SiteService/internal/api/handlers"
)

const (
	msgInvalidLimit = "invalid limit parameter"

	maxActivityLimit = 100
)

type Handler struct {
	service ContentService
	logger  Logger
}

func NewHandler(service ContentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/activity?limit={n}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed > maxActivityLimit {
			h.logger.Warn("GET /admin/activity - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.ListActivity(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /admin/activity - Failed to list activity: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
