package services

import (
	"context"

	"github.com/moonbarber/MB-SiteService/internal/service/catalog/models"
)

type CatalogService interface {
	ListServices(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error)
	CreateService(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error)
	UpdateService(ctx context.Context, id int64, req *models.ServiceRequest) (*models.ServiceResponse, error)
	DeleteService(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
