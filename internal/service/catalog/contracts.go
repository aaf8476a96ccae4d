package catalog

import (
	"context"

	"github.com/moonbarber/MB-SiteService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, id int64, service *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

// TeamRepository интерфейс репозитория мастеров
type TeamRepository interface {
	List(ctx context.Context, availableOnly bool) ([]*domain.TeamMember, error)
	GetByID(ctx context.Context, id int64) (*domain.TeamMember, error)
	Create(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error)
	Update(ctx context.Context, id int64, member *domain.TeamMember) (*domain.TeamMember, error)
	Delete(ctx context.Context, id int64) error
}

// ActivityRepository интерфейс журнала действий
type ActivityRepository interface {
	Create(ctx context.Context, description string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
