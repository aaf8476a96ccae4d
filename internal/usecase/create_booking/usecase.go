package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/moonbarber/MB-SiteService/internal/domain"
	bookingRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/booking"
	serviceRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/service"
	teamRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/team"
)

// UseCase use case для создания записи к мастеру
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	teamRepo     TeamRepository
	activityRepo ActivityRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	teamRepo TeamRepository,
	activityRepo ActivityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		teamRepo:     teamRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания записи.
// Использует сериализуемую транзакцию, чтобы два клиента не заняли один слот;
// частичный уникальный индекс в БД остается последней линией защиты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, barber=%d, date=%s, time=%s",
		req.ServiceID, req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Проверяем мастера
	barber, err := uc.teamRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, teamRepo.ErrMemberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.Available {
		uc.logger.Warn("CreateBooking: barber id=%d is unavailable", req.BarberID)
		return nil, ErrBarberNotFound
	}

	var result *domain.Booking

	// 4. Проверка слота и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Ищем активную запись на этот слот с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.FindActiveBySlot(txCtx, req.BarberID, req.Date, req.StartTime)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Warn("CreateBooking: slot barber=%d %s %s already taken by booking id=%d",
				req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime, existing.ID)
			return ErrSlotNotAvailable
		}

		// 4.2. Создаем запись со статусом pending
		booking := &domain.Booking{
			ServiceID:     req.ServiceID,
			BarberID:      req.BarberID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			Status:        domain.StatusPending,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Индекс uq_bookings_active_slot сработал раньше нашей проверки
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot barber=%d %s %s taken concurrently",
					req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Журнал действий не критичен для результата
	activityMsg := fmt.Sprintf("New booking: %s with %s on %s at %s",
		req.CustomerName, barber.Name, req.Date.Format(domain.DateFormat), req.StartTime)
	if err := uc.activityRepo.Create(ctx, activityMsg); err != nil {
		uc.logger.Warn("CreateBooking: failed to log activity: %v", err)
	}

	return &Response{
		ID:            result.ID,
		ServiceID:     result.ServiceID,
		BarberID:      result.BarberID,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		Status:        string(result.Status),
		ServiceName:   service.Name,
		BarberName:    barber.Name,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
