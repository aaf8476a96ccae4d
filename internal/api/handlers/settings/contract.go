package settings

import (
	"context"

	"github.com/moonbarber/MB-SiteService/internal/service/content/models"
)

type ContentService interface {
	GetSettings(ctx context.Context) (*models.SettingsResponse, error)
	UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
	UpdateHours(ctx context.Context, req *models.UpdateHoursRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
