package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/moonbarber/MB-SiteService/internal/api/handlers"
	"github.com/moonbarber/MB-SiteService/internal/domain"
	getAvailableSlots "github.com/moonbarber/MB-SiteService/internal/usecase/get_available_slots"
)

const (
	msgInvalidBarberID = "invalid or missing barber parameter"
	msgInvalidDate     = "invalid or missing date parameter, expected YYYY-MM-DD"
	msgBarberNotFound  = "barber not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/available-times?barber={id}&date={YYYY-MM-DD}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(r.URL.Query().Get("barber"), 10, 64)
	if err != nil || barberID <= 0 {
		h.logger.Warn("GET /available-times - Invalid barber parameter: %q", r.URL.Query().Get("barber"))
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-times - Invalid date parameter: %q", r.URL.Query().Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBarberNotFound):
			h.logger.Warn("GET /available-times - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /available-times - Failed to get slots: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
