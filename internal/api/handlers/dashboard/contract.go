package dashboard

import (
	"context"

	dashboardService "github.com/moonbarber/MB-SiteService/internal/service/dashboard"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*dashboardService.Stats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
