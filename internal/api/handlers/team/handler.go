package team

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/moonbarber/MB-SiteService/internal/api/handlers"
	"github.com/moonbarber/MB-SiteService/internal/service/catalog"
	"github.com/moonbarber/MB-SiteService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidMemberID    = "invalid team member id"
	msgMemberNotFound     = "team member not found"
	msgInvalidInput       = "invalid team member data"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandlePublicList GET /api/team - только доступные мастера
func (h *Handler) HandlePublicList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListTeam(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /team - Failed to list team: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdminList GET /api/admin/team - все мастера
func (h *Handler) HandleAdminList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListTeam(r.Context(), false)
	if err != nil {
		h.logger.Error("GET /admin/team - Failed to list team: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/admin/team
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.TeamMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/team - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateMember(r.Context(), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /admin/team - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /admin/team - Failed to create member: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/admin/team/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidMemberID)
		return
	}

	var req models.TeamMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/team/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateMember(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMemberNotFound):
			h.logger.Warn("PUT /admin/team/{id} - Member not found: id=%d", id)
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/team/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/team/{id} - Failed to update member id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/admin/team/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidMemberID)
		return
	}

	if err := h.service.DeleteMember(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrMemberNotFound) {
			h.logger.Warn("DELETE /admin/team/{id} - Member not found: id=%d", id)
			handlers.RespondNotFound(w, msgMemberNotFound)
			return
		}
		h.logger.Error("DELETE /admin/team/{id} - Failed to delete member id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
