package get_available_slots

import (
	"context"
	"time"

	"github.com/moonbarber/MB-SiteService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Booking, error)
}

// TeamRepository интерфейс репозитория мастеров
type TeamRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TeamMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
