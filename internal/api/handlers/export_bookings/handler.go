package export_bookings

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/moonbarber/MB-SiteService/internal/api/handlers"
	"github.com/moonbarber/MB-SiteService/internal/api/handlers/list_bookings"
)

const (
	msgInvalidQuery = "invalid filter parameters"
)

var csvHeader = []string{"ID", "Date", "Time", "Customer", "Email", "Phone", "Service ID", "Barber ID", "Status", "Notes"}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/bookings/export
// Поддерживает те же фильтры, что и список записей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := list_bookings.ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/bookings/export - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/bookings/export - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := "bookings-" + time.Now().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		h.logger.Error("GET /admin/bookings/export - Failed to write CSV header: %v", err)
		return
	}

	for _, booking := range result.Bookings {
		notes := ""
		if booking.Notes != nil {
			notes = *booking.Notes
		}

		record := []string{
			strconv.FormatInt(booking.ID, 10),
			booking.BookingDate,
			booking.StartTime,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			strconv.FormatInt(booking.ServiceID, 10),
			strconv.FormatInt(booking.BarberID, 10),
			booking.Status,
			notes,
		}

		if err := writer.Write(record); err != nil {
			h.logger.Error("GET /admin/bookings/export - Failed to write CSV row: %v", err)
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		h.logger.Error("GET /admin/bookings/export - CSV flush error: %v", err)
		return
	}

	h.logger.Info("GET /admin/bookings/export - Exported %d bookings", len(result.Bookings))
}
