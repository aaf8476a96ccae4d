package create_booking

import (
	"context"
	"time"

	"github.com/moonbarber/MB-SiteService/internal/domain"
	"github.com/moonbarber/MB-SiteService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindActiveBySlot(ctx context.Context, barberID int64, date time.Time, startTime types.TimeString) (*domain.Booking, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TeamRepository интерфейс репозитория мастеров
type TeamRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TeamMember, error)
}

// ActivityRepository интерфейс журнала действий
type ActivityRepository interface {
	Create(ctx context.Context, description string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
