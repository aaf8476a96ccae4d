package models

import (
	"time"

	"github.com/moonbarber/MB-SiteService/internal/domain"
)

// Request модели

// ServiceRequest запрос на создание или обновление услуги
type ServiceRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Category        string  `json:"category"`
	Image           *string `json:"image,omitempty"`
	Active          *bool   `json:"active,omitempty"`
	Featured        bool    `json:"featured,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *ServiceRequest) ToDomain() *domain.Service {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &domain.Service{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Category:        r.Category,
		Image:           r.Image,
		Active:          active,
		Featured:        r.Featured,
	}
}

// TeamMemberRequest запрос на создание или обновление мастера
type TeamMemberRequest struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Bio         *string  `json:"bio,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *TeamMemberRequest) ToDomain() *domain.TeamMember {
	available := true
	if r.Available != nil {
		available = *r.Available
	}

	specialties := r.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return &domain.TeamMember{
		Name:        r.Name,
		Role:        r.Role,
		Bio:         r.Bio,
		ImageURL:    r.ImageURL,
		Specialties: specialties,
		Available:   available,
	}
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	Category        string    `json:"category"`
	Image           *string   `json:"image,omitempty"`
	Active          bool      `json:"active"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// TeamMemberResponse ответ с данными мастера
type TeamMemberResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Bio         *string   `json:"bio,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Specialties []string  `json:"specialties"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TeamListResponse ответ со списком мастеров
type TeamListResponse struct {
	Members []TeamMemberResponse `json:"members"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Category:        s.Category,
		Image:           s.Image,
		Active:          s.Active,
		Featured:        s.Featured,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, service := range services {
		if serviceResp := FromDomainService(service); serviceResp != nil {
			resp.Services = append(resp.Services, *serviceResp)
		}
	}

	return resp
}

// FromDomainMember конвертирует domain модель в DTO
func FromDomainMember(m *domain.TeamMember) *TeamMemberResponse {
	if m == nil {
		return nil
	}

	specialties := m.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return &TeamMemberResponse{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		Bio:         m.Bio,
		ImageURL:    m.ImageURL,
		Specialties: specialties,
		Available:   m.Available,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomainMemberList конвертирует список domain моделей в DTO
func FromDomainMemberList(members []*domain.TeamMember) *TeamListResponse {
	resp := &TeamListResponse{
		Members: make([]TeamMemberResponse, 0, len(members)),
	}

	for _, member := range members {
		if memberResp := FromDomainMember(member); memberResp != nil {
			resp.Members = append(resp.Members, *memberResp)
		}
	}

	return resp
}
