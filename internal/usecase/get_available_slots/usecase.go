package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/moonbarber/MB-SiteService/internal/domain"
	teamRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/team"
)

// UseCase use case для получения свободных слотов мастера на дату
type UseCase struct {
	bookingRepo BookingRepository
	teamRepo    TeamRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, teamRepo TeamRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		teamRepo:    teamRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Сетка фиксированная (09:00-19:00, шаг час), из нее вычитаются активные записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%d, date=%s", req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем мастера
	if _, err := uc.teamRepo.GetByID(ctx, req.BarberID); err != nil {
		if errors.Is(err, teamRepo.ErrMemberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 3. Получаем активные записи мастера на дату
	bookings, err := uc.bookingRepo.GetActiveByBarberAndDate(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Вычитаем занятые слоты из сетки
	slots := filterAvailableSlots(bookings)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for barber=%d on %s",
		len(slots), len(domain.DailySlotGrid()), req.BarberID, req.Date.Format(domain.DateFormat))

	return &Response{
		BarberID: req.BarberID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}
