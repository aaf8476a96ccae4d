package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	serviceRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/service"
	teamRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/team"
	"github.com/moonbarber/MB-SiteService/internal/service/catalog/models"
)

// Service сервис каталога: услуги и команда мастеров
type Service struct {
	serviceRepo  ServiceRepository
	teamRepo     TeamRepository
	activityRepo ActivityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	teamRepo TeamRepository,
	activityRepo ActivityRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		teamRepo:     teamRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// ListServices возвращает услуги.
// activeOnly=true для публичного сайта, false для админки.
func (s *Service) ListServices(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// CreateService создает услугу
func (s *Service) CreateService(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: creating service name=%q", req.Name)

	if err := validateServiceRequest(req); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, serviceRepo.ErrDuplicateName) {
			s.logger.Warn("CreateService: service name=%q already exists", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%d", created.ID)
	s.logActivity(ctx, fmt.Sprintf("Service added: %s", created.Name))

	return models.FromDomainService(created), nil
}

// UpdateService обновляет услугу
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: updating service id=%d", id)

	if err := validateServiceRequest(req); err != nil {
		s.logger.Warn("UpdateService: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.serviceRepo.Update(ctx, id, req.ToDomain())
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		if errors.Is(err, serviceRepo.ErrDuplicateName) {
			s.logger.Warn("UpdateService: service name=%q already exists", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("UpdateService: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: successfully updated service id=%d", id)
	s.logActivity(ctx, fmt.Sprintf("Service updated: %s", updated.Name))

	return models.FromDomainService(updated), nil
}

// DeleteService удаляет услугу
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	s.logger.Info("DeleteService: deleting service id=%d", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: successfully deleted service id=%d", id)
	s.logActivity(ctx, fmt.Sprintf("Service #%d deleted", id))

	return nil
}

// ListTeam возвращает мастеров.
// availableOnly=true для публичного сайта, false для админки.
func (s *Service) ListTeam(ctx context.Context, availableOnly bool) (*models.TeamListResponse, error) {
	members, err := s.teamRepo.List(ctx, availableOnly)
	if err != nil {
		s.logger.Error("ListTeam: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTeam - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMemberList(members), nil
}

// CreateMember добавляет мастера
func (s *Service) CreateMember(ctx context.Context, req *models.TeamMemberRequest) (*models.TeamMemberResponse, error) {
	s.logger.Info("CreateMember: creating member name=%q", req.Name)

	if err := validateMemberRequest(req); err != nil {
		s.logger.Warn("CreateMember: validation failed: %v", err)
		return nil, err
	}

	created, err := s.teamRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("CreateMember: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateMember - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateMember: successfully created member id=%d", created.ID)
	s.logActivity(ctx, fmt.Sprintf("Team member added: %s", created.Name))

	return models.FromDomainMember(created), nil
}

// UpdateMember обновляет мастера
func (s *Service) UpdateMember(ctx context.Context, id int64, req *models.TeamMemberRequest) (*models.TeamMemberResponse, error) {
	s.logger.Info("UpdateMember: updating member id=%d", id)

	if err := validateMemberRequest(req); err != nil {
		s.logger.Warn("UpdateMember: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.teamRepo.Update(ctx, id, req.ToDomain())
	if err != nil {
		if errors.Is(err, teamRepo.ErrMemberNotFound) {
			s.logger.Warn("UpdateMember: member id=%d not found", id)
			return nil, ErrMemberNotFound
		}
		s.logger.Error("UpdateMember: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateMember - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateMember: successfully updated member id=%d", id)
	s.logActivity(ctx, fmt.Sprintf("Team member updated: %s", updated.Name))

	return models.FromDomainMember(updated), nil
}

// DeleteMember удаляет мастера
func (s *Service) DeleteMember(ctx context.Context, id int64) error {
	s.logger.Info("DeleteMember: deleting member id=%d", id)

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, teamRepo.ErrMemberNotFound) {
			s.logger.Warn("DeleteMember: member id=%d not found", id)
			return ErrMemberNotFound
		}
		s.logger.Error("DeleteMember: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteMember - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteMember: successfully deleted member id=%d", id)
	s.logActivity(ctx, fmt.Sprintf("Team member #%d deleted", id))

	return nil
}

// logActivity пишет событие в журнал, ошибки не фатальны
func (s *Service) logActivity(ctx context.Context, description string) {
	if err := s.activityRepo.Create(ctx, description); err != nil {
		s.logger.Warn("logActivity: failed to log %q: %v", description, err)
	}
}

func validateServiceRequest(req *models.ServiceRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	return nil
}

func validateMemberRequest(req *models.TeamMemberRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Role) == "" {
		return fmt.Errorf("%w: role is required", ErrInvalidInput)
	}
	return nil
}
