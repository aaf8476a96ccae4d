package get_available_slots

import (
	"github.com/moonbarber/MB-SiteService/internal/domain"
	"github.com/moonbarber/MB-SiteService/pkg/types"
)

// filterAvailableSlots возвращает слоты часовой сетки, на которые нет активной записи.
// Порядок сетки сохраняется. Завершенные и отмененные записи слот не занимают.
func filterAvailableSlots(bookings []*domain.Booking) []types.TimeString {
	taken := make(map[types.TimeString]struct{}, len(bookings))
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		taken[booking.StartTime] = struct{}{}
	}

	grid := domain.DailySlotGrid()
	available := make([]types.TimeString, 0, len(grid))
	for _, slot := range grid {
		if _, ok := taken[slot]; ok {
			continue
		}
		available = append(available, slot)
	}

	return available
}
