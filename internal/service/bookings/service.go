package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/moonbarber/MB-SiteService/internal/domain"
	bookingRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/booking"
	"github.com/moonbarber/MB-SiteService/internal/service/bookings/models"
)

// Service сервис для работы с записями в админке
type Service struct {
	bookingRepo  BookingRepository
	activityRepo ActivityRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	bookingRepo BookingRepository,
	activityRepo ActivityRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает записи с гибкой фильтрацией
//
// Примеры использования:
// - Все записи: List(ctx, &ListBookingsRequest{IncludeInactive: true})
// - Записи мастера: указать BarberID
// - Записи на дату: StartDate и EndDate указывают на одну дату
// - Только ожидающие подтверждения: указать Status = "pending"
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.BarberID != nil {
		logMsg += fmt.Sprintf(", barber=%d", *req.BarberID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит запись в новый статус.
// Допустимые переходы: pending -> confirmed/cancelled, confirmed -> completed/cancelled.
// Завершенные и отмененные записи менять нельзя.
// Чтение и обновление выполняются в одной транзакции, чтобы два админа
// не перевели запись по конфликтующим веткам.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	var updated *domain.Booking

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if !booking.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%d",
				booking.Status, newStatus, bookingID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		booking.Status = newStatus
		updated = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)

	// Журнал действий не критичен для результата
	activityMsg := fmt.Sprintf("Booking #%d %s (%s, %s %s)",
		bookingID, newStatus, updated.CustomerName,
		updated.BookingDate.Format(domain.DateFormat), updated.StartTime)
	if err := s.activityRepo.Create(ctx, activityMsg); err != nil {
		s.logger.Warn("UpdateStatus: failed to log activity: %v", err)
	}

	return models.FromDomainBooking(updated), nil
}
