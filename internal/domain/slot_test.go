package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonbarber/MB-SiteService/pkg/types"
)

func TestDailySlotGrid(t *testing.T) {
	grid := DailySlotGrid()

	require.Len(t, grid, 10)
	assert.Equal(t, types.TimeString("09:00"), grid[0])
	assert.Equal(t, types.TimeString("18:00"), grid[len(grid)-1])

	// Слоты идут подряд с шагом в час
	for i := 1; i < len(grid); i++ {
		next, err := grid[i-1].AddMinutes(SlotDurationMinutes)
		require.NoError(t, err)
		assert.Equal(t, next, grid[i])
	}
}

func TestIsGridSlot(t *testing.T) {
	assert.True(t, IsGridSlot("09:00"))
	assert.True(t, IsGridSlot("18:00"))
	assert.False(t, IsGridSlot("08:00"))
	assert.False(t, IsGridSlot("19:00"))
	assert.False(t, IsGridSlot("10:30"))
	assert.False(t, IsGridSlot(""))
}
