package reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/moonbarber/MB-SiteService/internal/api/handlers"
	"github.com/moonbarber/MB-SiteService/internal/service/content"
	"github.com/moonbarber/MB-SiteService/internal/service/content/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidReviewID    = "invalid review id"
	msgReviewNotFound     = "review not found"
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

// HandlePublicList GET /api/reviews - только одобренные отзывы
func (h *Handler) HandlePublicList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListReviews(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /reviews - Failed to list reviews: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdminList GET /api/admin/reviews - все отзывы
func (h *Handler) HandleAdminList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListReviews(r.Context(), false)
	if err != nil {
		h.logger.Error("GET /admin/reviews - Failed to list reviews: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateApproval PUT /api/admin/reviews/{id}/approval
func (h *Handler) HandleUpdateApproval(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	var req models.UpdateApprovalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/reviews/{id}/approval - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateReviewApproval(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, content.ErrReviewNotFound) {
			h.logger.Warn("PUT /admin/reviews/{id}/approval - Review not found: id=%d", id)
			handlers.RespondNotFound(w, msgReviewNotFound)
			return
		}
		h.logger.Error("PUT /admin/reviews/{id}/approval - Failed to update review id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/admin/reviews/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	if err := h.service.DeleteReview(r.Context(), id); err != nil {
		if errors.Is(err, content.ErrReviewNotFound) {
			h.logger.Warn("DELETE /admin/reviews/{id} - Review not found: id=%d", id)
			handlers.RespondNotFound(w, msgReviewNotFound)
			return
		}
		h.logger.Error("DELETE /admin/reviews/{id} - Failed to delete review id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
