package reviews

import (
	"context"

	"github.com/moonbarber/MB-SiteService/internal/service/content/models"
)

type ContentService interface {
	ListReviews(ctx context.Context, approvedOnly bool) (*models.ReviewListResponse, error)
	UpdateReviewApproval(ctx context.Context, id int64, req *models.UpdateApprovalRequest) (*models.ReviewResponse, error)
	DeleteReview(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
