package models

import (
	"time"

	"github.com/moonbarber/MB-SiteService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на полное обновление настроек
type UpdateSettingsRequest struct {
	BusinessHours *domain.BusinessHours `json:"businessHours,omitempty"`
	Notifications *domain.Notifications `json:"notifications,omitempty"`
	Contact       *domain.ContactInfo   `json:"contact,omitempty"`
	Social        *domain.SocialMedia   `json:"social,omitempty"`
}

// UpdateHoursRequest запрос на обновление только расписания
type UpdateHoursRequest struct {
	BusinessHours domain.BusinessHours `json:"businessHours"`
}

// UpdateApprovalRequest запрос на публикацию или скрытие отзыва
type UpdateApprovalRequest struct {
	Approved bool `json:"approved"`
}

// Response модели

// GalleryImageResponse ответ с данными фото
type GalleryImageResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// GalleryListResponse ответ со списком фото
type GalleryListResponse struct {
	Images []GalleryImageResponse `json:"images"`
}

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"`
	Text         string    `json:"text"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ReviewListResponse ответ со списком отзывов
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// SettingsResponse ответ с настройками сайта
type SettingsResponse struct {
	BusinessHours domain.BusinessHours `json:"businessHours"`
	Notifications domain.Notifications `json:"notifications"`
	Contact       domain.ContactInfo   `json:"contact"`
	Social        domain.SocialMedia   `json:"social"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// ActivityResponse ответ с событием журнала
type ActivityResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ActivityListResponse ответ со списком событий
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// Методы конвертации

// FromDomainImage конвертирует domain модель в DTO
func FromDomainImage(img *domain.GalleryImage) *GalleryImageResponse {
	if img == nil {
		return nil
	}

	return &GalleryImageResponse{
		ID:        img.ID,
		Title:     img.Title,
		URL:       img.URL,
		CreatedAt: img.CreatedAt,
	}
}

// FromDomainImageList конвертирует список domain моделей в DTO
func FromDomainImageList(images []*domain.GalleryImage) *GalleryListResponse {
	resp := &GalleryListResponse{
		Images: make([]GalleryImageResponse, 0, len(images)),
	}

	for _, img := range images {
		if imgResp := FromDomainImage(img); imgResp != nil {
			resp.Images = append(resp.Images, *imgResp)
		}
	}

	return resp
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Text:         r.Text,
		Approved:     r.Approved,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews: make([]ReviewResponse, 0, len(reviews)),
	}

	for _, review := range reviews {
		if reviewResp := FromDomainReview(review); reviewResp != nil {
			resp.Reviews = append(resp.Reviews, *reviewResp)
		}
	}

	return resp
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.Settings) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		BusinessHours: s.BusinessHours,
		Notifications: s.Notifications,
		Contact:       s.Contact,
		Social:        s.Social,
		UpdatedAt:     s.UpdatedAt,
	}
}

// FromDomainActivityList конвертирует список domain моделей в DTO
func FromDomainActivityList(activities []*domain.Activity) *ActivityListResponse {
	resp := &ActivityListResponse{
		Activities: make([]ActivityResponse, 0, len(activities)),
	}

	for _, act := range activities {
		resp.Activities = append(resp.Activities, ActivityResponse{
			ID:          act.ID,
			Description: act.Description,
			CreatedAt:   act.CreatedAt,
		})
	}

	return resp
}
