package gallery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/moonbarber/MB-SiteService/internal/api/handlers"
	"github.com/moonbarber/MB-SiteService/internal/service/content"
)

const (
	msgInvalidImageID      = "invalid image id"
	msgImageNotFound       = "image not found"
	msgMissingFile         = "image file is required"
	msgFileTooLarge        = "image file is too large"
	msgUnsupportedFileType = "unsupported image type"

	// Жесткий потолок multipart формы, сервис проверяет свой лимит отдельно
	maxUploadMemory = 32 << 20
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

// HandleList GET /api/gallery
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListGallery(r.Context())
	if err != nil {
		h.logger.Error("GET /gallery - Failed to list gallery: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpload POST /api/admin/gallery (multipart/form-data: image, title)
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.logger.Warn("POST /admin/gallery - Failed to parse form: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.logger.Warn("POST /admin/gallery - Missing image file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	title := r.FormValue("title")

	result, err := h.service.UploadImage(r.Context(), title, header.Filename, header.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrFileTooLarge):
			h.logger.Warn("POST /admin/gallery - File too large: %q (%d bytes)", header.Filename, header.Size)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)

		case errors.Is(err, content.ErrUnsupportedFileType):
			h.logger.Warn("POST /admin/gallery - Unsupported file type: %q", header.Filename)
			handlers.RespondBadRequest(w, msgUnsupportedFileType)

		default:
			h.logger.Error("POST /admin/gallery - Failed to upload image: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleDelete DELETE /api/admin/gallery/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidImageID)
		return
	}

	if err := h.service.DeleteImage(r.Context(), id); err != nil {
		if errors.Is(err, content.ErrImageNotFound) {
			h.logger.Warn("DELETE /admin/gallery/{id} - Image not found: id=%d", id)
			handlers.RespondNotFound(w, msgImageNotFound)
			return
		}
		h.logger.Error("DELETE /admin/gallery/{id} - Failed to delete image id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
