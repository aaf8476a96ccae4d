package dashboard

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountByDate(ctx context.Context, date time.Time) (int64, error)
	CompletedRevenue(ctx context.Context) (float64, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Count(ctx context.Context) (int64, error)
}

// TeamRepository интерфейс репозитория мастеров
type TeamRepository interface {
	Count(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
