package settings

import (
	"net/http"

	"github.com/moonbarber/MB-SiteService/internal/api/handlers"
	"github.com/moonbarber/MB-SiteService/internal/service/content/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// HandlePublicContact GET /api/contact - контакты и расписание для публичного сайта
func (h *Handler) HandlePublicContact(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSettings(r.Context())
	if err != nil {
		h.logger.Error("GET /contact - Failed to get settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Наружу отдаем только публичные секции
	handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"contact":       result.Contact,
		"social":        result.Social,
		"businessHours": result.BusinessHours,
	})
}

// HandleGet GET /api/admin/settings
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSettings(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/settings - Failed to get settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/admin/settings
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSettings(r.Context(), &req)
	if err != nil {
		h.logger.Error("PUT /admin/settings - Failed to update settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateHours PUT /api/admin/settings/hours
func (h *Handler) HandleUpdateHours(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateHours(r.Context(), &req)
	if err != nil {
		h.logger.Error("PUT /admin/settings/hours - Failed to update hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
