package dashboard

import (
	"context"
	"fmt"
	"time"
)

// Stats сводка для главной страницы админки
type Stats struct {
	TodayBookings    int64   `json:"todayBookings"`
	CompletedRevenue float64 `json:"completedRevenue"`
	ServicesCount    int64   `json:"servicesCount"`
	TeamCount        int64   `json:"teamCount"`
}

// Service сервис сводной статистики админки
type Service struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	teamRepo    TeamRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	teamRepo TeamRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		teamRepo:    teamRepo,
		logger:      logger,
	}
}

// GetStats собирает сводку: записи на сегодня, выручка по завершенным,
// количество услуг и мастеров
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	today := time.Now()

	todayBookings, err := s.bookingRepo.CountByDate(ctx, today)
	if err != nil {
		s.logger.Error("GetStats: failed to count today bookings: %v", err)
		return nil, fmt.Errorf("%w: GetStats - count bookings: %v", ErrInternal, err)
	}

	revenue, err := s.bookingRepo.CompletedRevenue(ctx)
	if err != nil {
		s.logger.Error("GetStats: failed to get revenue: %v", err)
		return nil, fmt.Errorf("%w: GetStats - revenue: %v", ErrInternal, err)
	}

	servicesCount, err := s.serviceRepo.Count(ctx)
	if err != nil {
		s.logger.Error("GetStats: failed to count services: %v", err)
		return nil, fmt.Errorf("%w: GetStats - count services: %v", ErrInternal, err)
	}

	teamCount, err := s.teamRepo.Count(ctx)
	if err != nil {
		s.logger.Error("GetStats: failed to count team members: %v", err)
		return nil, fmt.Errorf("%w: GetStats - count team: %v", ErrInternal, err)
	}

	return &Stats{
		TodayBookings:    todayBookings,
		CompletedRevenue: revenue,
		ServicesCount:    servicesCount,
		TeamCount:        teamCount,
	}, nil
}
