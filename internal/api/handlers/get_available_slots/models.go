package get_available_slots

import (
	"github.com/moonbarber/MB-SiteService/internal/domain"
	getAvailableSlots "github.com/moonbarber/MB-SiteService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BarberID       int64    `json:"barberId"`
	Date           string   `json:"date"`
	AvailableTimes []string `json:"availableTimes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	times := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		times = append(times, slot.String())
	}

	return &AvailableSlotsResponse{
		BarberID:       resp.BarberID,
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableTimes: times,
	}
}
