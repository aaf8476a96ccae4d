package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или отключена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrBarberNotFound возвращается, когда мастер не найден или недоступен
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrSlotNotAvailable возвращается, когда на выбранный слот уже есть активная запись
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в часовую сетку
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
