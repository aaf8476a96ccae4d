package content

import (
	"context"

	"github.com/moonbarber/MB-SiteService/internal/domain"
)

// GalleryRepository интерфейс репозитория галереи
type GalleryRepository interface {
	List(ctx context.Context) ([]*domain.GalleryImage, error)
	GetByID(ctx context.Context, id int64) (*domain.GalleryImage, error)
	Create(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	List(ctx context.Context, approvedOnly bool) ([]*domain.Review, error)
	UpdateApproval(ctx context.Context, id int64, approved bool) (*domain.Review, error)
	Delete(ctx context.Context, id int64) error
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) (*domain.Settings, error)
}

// ActivityRepository интерфейс журнала действий
type ActivityRepository interface {
	Create(ctx context.Context, description string) error
	ListRecent(ctx context.Context, limit uint64) ([]*domain.Activity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
