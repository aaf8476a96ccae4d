package domain

import (
	"fmt"

	"github.com/moonbarber/MB-SiteService/pkg/types"
)

// DailySlotGrid returns the full ordered list of bookable slot labels for
// one business day: "09:00", "10:00", ... "18:00".
func DailySlotGrid() []types.TimeString {
	grid := make([]types.TimeString, 0, GridCloseHour-GridOpenHour)
	for hour := GridOpenHour; hour < GridCloseHour; hour++ {
		grid = append(grid, types.TimeString(fmt.Sprintf("%02d:00", hour)))
	}
	return grid
}

// IsGridSlot reports whether the label belongs to the daily grid
func IsGridSlot(t types.TimeString) bool {
	for _, slot := range DailySlotGrid() {
		if slot == t {
			return true
		}
	}
	return false
}
