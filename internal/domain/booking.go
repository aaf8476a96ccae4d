package domain

import (
	"errors"
	"time"

	"github.com/moonbarber/MB-SiteService/pkg/types"
)

// ErrUnknownStatus is returned for status strings outside the lifecycle
var ErrUnknownStatus = errors.New("unknown booking status")

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer appointment with a barber
type Booking struct {
	ID        int64
	ServiceID int64
	BarberID  int64

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	BookingDate time.Time        // calendar date, local business date
	StartTime   types.TimeString // slot label from the daily grid
	Status      BookingStatus
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking holds its slot
// (pending and confirmed bookings block the slot, terminal ones do not)
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// transitions is the full set of permitted status changes.
// Anything not listed here is rejected.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo reports whether the booking may move to the target status
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range transitions[b.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ParseBookingStatus validates a raw status string
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), nil
	}
	return "", ErrUnknownStatus
}

// BookingsFilter фильтр для выборки бронирований в админке
type BookingsFilter struct {
	BarberID        *int64         // Фильтр по мастеру (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли завершённые и отменённые
}
