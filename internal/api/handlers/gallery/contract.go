package gallery

import (
	"context"
	"io"

	"github.com/moonbarber/MB-SiteService/internal/service/content/models"
)

type ContentService interface {
	ListGallery(ctx context.Context) (*models.GalleryListResponse, error)
	UploadImage(ctx context.Context, title, filename string, size int64, file io.Reader) (*models.GalleryImageResponse, error)
	DeleteImage(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
