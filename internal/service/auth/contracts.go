package auth

import (
	"context"

	"github.com/moonbarber/MB-SiteService/internal/domain"
)

// AdminUserRepository интерфейс репозитория администраторов
type AdminUserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *domain.AdminUser) (*domain.AdminUser, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
