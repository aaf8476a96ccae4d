package get_available_slots

import (
	"time"

	"github.com/moonbarber/MB-SiteService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	BarberID int64     // ID мастера
	Date     time.Time // Дата (без времени)
}

// Response модель ответа со свободными слотами
type Response struct {
	BarberID int64              // ID мастера
	Date     time.Time          // Дата
	Slots    []types.TimeString // Свободные слоты в порядке сетки
}
