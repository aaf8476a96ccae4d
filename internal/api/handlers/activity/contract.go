package activity

import (
	"context"

	"github.com/moonbarber/MB-SiteService/internal/service/content/models"
)

type ContentService interface {
	ListActivity(ctx context.Context, limit uint64) (*models.ActivityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
