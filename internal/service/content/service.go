package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/moonbarber/MB-SiteService/internal/domain"
	galleryRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/gallery"
	reviewRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/review"
	settingsRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/settings"
	"github.com/moonbarber/MB-SiteService/internal/service/content/models"
)

// defaultActivityLimit количество событий журнала по умолчанию
const defaultActivityLimit = 20

// allowedImageExts расширения, допустимые для загрузки в галерею
var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

// UploadsConfig параметры хранения загруженных файлов
type UploadsConfig struct {
	Dir        string // Каталог на диске
	MaxSizeMB  int64  // Лимит размера файла
	PublicPath string // Префикс публичного URL, например "/uploads"
}

// Service сервис контента: галерея, отзывы, настройки, журнал
type Service struct {
	galleryRepo  GalleryRepository
	reviewRepo   ReviewRepository
	settingsRepo SettingsRepository
	activityRepo ActivityRepository
	uploads      UploadsConfig
	logger       Logger
}

// NewService создает новый экземпляр сервиса контента
func NewService(
	galleryRepo GalleryRepository,
	reviewRepo ReviewRepository,
	settingsRepo SettingsRepository,
	activityRepo ActivityRepository,
	uploads UploadsConfig,
	logger Logger,
) *Service {
	return &Service{
		galleryRepo:  galleryRepo,
		reviewRepo:   reviewRepo,
		settingsRepo: settingsRepo,
		activityRepo: activityRepo,
		uploads:      uploads,
		logger:       logger,
	}
}

// ListGallery возвращает все фото галереи
func (s *Service) ListGallery(ctx context.Context) (*models.GalleryListResponse, error) {
	images, err := s.galleryRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListGallery: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListGallery - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainImageList(images), nil
}

// UploadImage сохраняет файл на диск под случайным именем и создает запись.
// Оригинальное имя файла используется только для заголовка и расширения.
func (s *Service) UploadImage(ctx context.Context, title, filename string, size int64, file io.Reader) (*models.GalleryImageResponse, error) {
	s.logger.Info("UploadImage: uploading %q (%d bytes)", filename, size)

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedImageExts[ext]; !ok {
		s.logger.Warn("UploadImage: unsupported extension %q", ext)
		return nil, ErrUnsupportedFileType
	}

	if size > s.uploads.MaxSizeMB*1024*1024 {
		s.logger.Warn("UploadImage: file %q exceeds %dMB limit", filename, s.uploads.MaxSizeMB)
		return nil, ErrFileTooLarge
	}

	if strings.TrimSpace(title) == "" {
		title = strings.TrimSuffix(filepath.Base(filename), ext)
	}

	storedName := uuid.NewString() + ext
	diskPath := filepath.Join(s.uploads.Dir, storedName)

	dst, err := os.Create(diskPath)
	if err != nil {
		s.logger.Error("UploadImage: failed to create file %s: %v", diskPath, err)
		return nil, fmt.Errorf("%w: UploadImage - create file: %v", ErrInternal, err)
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(diskPath)
		s.logger.Error("UploadImage: failed to write file %s: %v", diskPath, err)
		return nil, fmt.Errorf("%w: UploadImage - write file: %v", ErrInternal, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(diskPath)
		s.logger.Error("UploadImage: failed to close file %s: %v", diskPath, err)
		return nil, fmt.Errorf("%w: UploadImage - close file: %v", ErrInternal, err)
	}

	img := &domain.GalleryImage{
		Title: title,
		URL:   s.uploads.PublicPath + "/" + storedName,
	}

	created, err := s.galleryRepo.Create(ctx, img)
	if err != nil {
		os.Remove(diskPath)
		s.logger.Error("UploadImage: repository error: %v", err)
		return nil, fmt.Errorf("%w: UploadImage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UploadImage: successfully uploaded image id=%d as %s", created.ID, storedName)
	s.logActivity(ctx, fmt.Sprintf("Gallery image added: %s", created.Title))

	return models.FromDomainImage(created), nil
}

// DeleteImage удаляет запись и файл с диска
func (s *Service) DeleteImage(ctx context.Context, id int64) error {
	s.logger.Info("DeleteImage: deleting image id=%d", id)

	img, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, galleryRepo.ErrImageNotFound) {
			s.logger.Warn("DeleteImage: image id=%d not found", id)
			return ErrImageNotFound
		}
		s.logger.Error("DeleteImage: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteImage - repository error: %v", ErrInternal, err)
	}

	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, galleryRepo.ErrImageNotFound) {
			return ErrImageNotFound
		}
		s.logger.Error("DeleteImage: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteImage - repository error: %v", ErrInternal, err)
	}

	// Файл на диске удаляем в последнюю очередь, потеря файла не критична
	diskPath := filepath.Join(s.uploads.Dir, filepath.Base(img.URL))
	if err := os.Remove(diskPath); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("DeleteImage: failed to remove file %s: %v", diskPath, err)
	}

	s.logger.Info("DeleteImage: successfully deleted image id=%d", id)
	s.logActivity(ctx, fmt.Sprintf("Gallery image #%d deleted", id))

	return nil
}

// ListReviews возвращает отзывы.
// approvedOnly=true для публичного сайта, false для админки.
func (s *Service) ListReviews(ctx context.Context, approvedOnly bool) (*models.ReviewListResponse, error) {
	reviews, err := s.reviewRepo.List(ctx, approvedOnly)
	if err != nil {
		s.logger.Error("ListReviews: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListReviews - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews), nil
}

// UpdateReviewApproval публикует или скрывает отзыв
func (s *Service) UpdateReviewApproval(ctx context.Context, id int64, req *models.UpdateApprovalRequest) (*models.ReviewResponse, error) {
	s.logger.Info("UpdateReviewApproval: review id=%d approved=%t", id, req.Approved)

	updated, err := s.reviewRepo.UpdateApproval(ctx, id, req.Approved)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("UpdateReviewApproval: review id=%d not found", id)
			return nil, ErrReviewNotFound
		}
		s.logger.Error("UpdateReviewApproval: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateReviewApproval - repository error: %v", ErrInternal, err)
	}

	action := "hidden"
	if req.Approved {
		action = "approved"
	}
	s.logActivity(ctx, fmt.Sprintf("Review #%d %s", id, action))

	return models.FromDomainReview(updated), nil
}

// DeleteReview удаляет отзыв
func (s *Service) DeleteReview(ctx context.Context, id int64) error {
	s.logger.Info("DeleteReview: deleting review id=%d", id)

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("DeleteReview: review id=%d not found", id)
			return ErrReviewNotFound
		}
		s.logger.Error("DeleteReview: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteReview - repository error: %v", ErrInternal, err)
	}

	s.logActivity(ctx, fmt.Sprintf("Review #%d deleted", id))

	return nil
}

// GetSettings возвращает настройки сайта.
// Если строка еще не создана, возвращаются значения по умолчанию.
func (s *Service) GetSettings(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return models.FromDomainSettings(defaultSettings()), nil
		}
		s.logger.Error("GetSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// UpdateSettings обновляет настройки целиком.
// Не указанные секции сохраняют текущие значения.
func (s *Service) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: updating site settings")

	current, err := s.currentOrDefault(ctx)
	if err != nil {
		return nil, err
	}

	if req.BusinessHours != nil {
		current.BusinessHours = *req.BusinessHours
	}
	if req.Notifications != nil {
		current.Notifications = *req.Notifications
	}
	if req.Contact != nil {
		current.Contact = *req.Contact
	}
	if req.Social != nil {
		current.Social = *req.Social
	}

	updated, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		s.logger.Error("UpdateSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSettings - repository error: %v", ErrInternal, err)
	}

	s.logActivity(ctx, "Site settings updated")

	return models.FromDomainSettings(updated), nil
}

// UpdateHours обновляет только расписание работы
func (s *Service) UpdateHours(ctx context.Context, req *models.UpdateHoursRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateHours: updating business hours")

	current, err := s.currentOrDefault(ctx)
	if err != nil {
		return nil, err
	}

	current.BusinessHours = req.BusinessHours

	updated, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		s.logger.Error("UpdateHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateHours - repository error: %v", ErrInternal, err)
	}

	s.logActivity(ctx, "Business hours updated")

	return models.FromDomainSettings(updated), nil
}

// ListActivity возвращает последние события журнала
func (s *Service) ListActivity(ctx context.Context, limit uint64) (*models.ActivityListResponse, error) {
	if limit == 0 {
		limit = defaultActivityLimit
	}

	activities, err := s.activityRepo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("ListActivity: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActivity - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainActivityList(activities), nil
}

func (s *Service) currentOrDefault(ctx context.Context) (*domain.Settings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return defaultSettings(), nil
		}
		s.logger.Error("currentOrDefault: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	return current, nil
}

// logActivity пишет событие в журнал, ошибки не фатальны
func (s *Service) logActivity(ctx context.Context, description string) {
	if err := s.activityRepo.Create(ctx, description); err != nil {
		s.logger.Warn("logActivity: failed to log %q: %v", description, err)
	}
}

// defaultSettings настройки нового салона: работаем каждый день кроме воскресенья
func defaultSettings() *domain.Settings {
	workday := domain.DayHours{Open: "09:00", Close: "19:00"}

	return &domain.Settings{
		BusinessHours: domain.BusinessHours{
			Monday:    workday,
			Tuesday:   workday,
			Wednesday: workday,
			Thursday:  workday,
			Friday:    workday,
			Saturday:  workday,
			Sunday:    domain.DayHours{Closed: true},
		},
		Notifications: domain.Notifications{Email: true},
	}
}
