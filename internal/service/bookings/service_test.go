package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonbarber/MB-SiteService/internal/domain"
	bookingRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/booking"
	"github.com/moonbarber/MB-SiteService/internal/service/bookings/models"
	"github.com/moonbarber/MB-SiteService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeActivityRepo struct {
	entries []string
}

func (f *fakeActivityRepo) Create(_ context.Context, description string) error {
	f.entries = append(f.entries, description)
	return nil
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.BarberID != nil && b.BarberID != *filter.BarberID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	booking, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

func newTestService(statuses map[int64]domain.BookingStatus) (*Service, *fakeBookingRepo, *fakeActivityRepo) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	for id, status := range statuses {
		repo.bookings[id] = &domain.Booking{
			ID:           id,
			ServiceID:    1,
			BarberID:     10,
			CustomerName: "John Doe",
			BookingDate:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			StartTime:    "10:00",
			Status:       status,
		}
	}

	activity := &fakeActivityRepo{}
	svc := NewService(repo, activity, fakeTxManager{}, nopLogger{})
	return svc, repo, activity
}

func TestService_UpdateStatus_AllowedTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.BookingStatus
		to   string
	}{
		{"confirm pending", domain.StatusPending, "confirmed"},
		{"cancel pending", domain.StatusPending, "cancelled"},
		{"complete confirmed", domain.StatusConfirmed, "completed"},
		{"cancel confirmed", domain.StatusConfirmed, "cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, activity := newTestService(map[int64]domain.BookingStatus{1: tt.from})

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tt.to})
			require.NoError(t, err)

			assert.Equal(t, tt.to, resp.Status)
			assert.Equal(t, domain.BookingStatus(tt.to), repo.bookings[1].Status)
			assert.Len(t, activity.entries, 1)
		})
	}
}

func TestService_UpdateStatus_RejectedTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.BookingStatus
		to   string
	}{
		{"pending cannot complete", domain.StatusPending, "completed"},
		{"confirmed cannot go back to pending", domain.StatusConfirmed, "pending"},
		{"completed is immutable", domain.StatusCompleted, "cancelled"},
		{"cancelled is immutable", domain.StatusCancelled, "confirmed"},
		{"cancelled cannot complete", domain.StatusCancelled, "completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService(map[int64]domain.BookingStatus{1: tt.from})

			_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tt.to})
			assert.ErrorIs(t, err, ErrInvalidTransition)

			// Статус не изменился
			assert.Equal(t, tt.from, repo.bookings[1].Status)
		})
	}
}

func TestService_UpdateStatus_UnknownStatus(t *testing.T) {
	svc, _, _ := newTestService(map[int64]domain.BookingStatus{1: domain.StatusPending})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_List_FiltersByStatus(t *testing.T) {
	svc, _, _ := newTestService(map[int64]domain.BookingStatus{
		1: domain.StatusPending,
		2: domain.StatusConfirmed,
		3: domain.StatusCancelled,
	})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("pending"), IncludeInactive: true})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "pending", resp.Bookings[0].Status)
}

func TestService_List_InvalidStatusFilter(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_ExcludesInactiveByDefault(t *testing.T) {
	svc, _, _ := newTestService(map[int64]domain.BookingStatus{
		1: domain.StatusPending,
		2: domain.StatusCompleted,
		3: domain.StatusCancelled,
	})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "pending", resp.Bookings[0].Status)
}
