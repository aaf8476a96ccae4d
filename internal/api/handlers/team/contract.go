package team

import (
	"context"

	"github.com/moonbarber/MB-SiteService/internal/service/catalog/models"
)

type CatalogService interface {
	ListTeam(ctx context.Context, availableOnly bool) (*models.TeamListResponse, error)
	CreateMember(ctx context.Context, req *models.TeamMemberRequest) (*models.TeamMemberResponse, error)
	UpdateMember(ctx context.Context, id int64, req *models.TeamMemberRequest) (*models.TeamMemberResponse, error)
	DeleteMember(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
