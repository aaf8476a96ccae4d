package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonbarber/MB-SiteService/internal/domain"
	teamRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/team"
	"github.com/moonbarber/MB-SiteService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetActiveByBarberAndDate(_ context.Context, barberID int64, date time.Time) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.BarberID == barberID && b.BookingDate.Equal(date) && b.IsActive() {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeTeamRepo struct {
	members map[int64]*domain.TeamMember
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id int64) (*domain.TeamMember, error) {
	member, ok := f.members[id]
	if !ok {
		return nil, teamRepo.ErrMemberNotFound
	}
	return member, nil
}

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func newTestUseCase(bookings []*domain.Booking) *UseCase {
	repo := &fakeBookingRepo{bookings: bookings}
	team := &fakeTeamRepo{members: map[int64]*domain.TeamMember{
		10: {ID: 10, Name: "James Wilson", Available: true},
	}}
	return NewUseCase(repo, team, nopLogger{})
}

func booking(barberID int64, startTime types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		BarberID:    barberID,
		BookingDate: testDate,
		StartTime:   startTime,
		Status:      status,
	}
}

func TestUseCase_Execute_FullGridWhenNoBookings(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 10, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, domain.DailySlotGrid(), resp.Slots)
	assert.Len(t, resp.Slots, 10)
}

func TestUseCase_Execute_ExcludesActiveBookings(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		booking(10, "10:00", domain.StatusPending),
		booking(10, "14:00", domain.StatusConfirmed),
	})

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 10, Date: testDate})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 8)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("14:00"))
	assert.Contains(t, resp.Slots, types.TimeString("09:00"))
}

func TestUseCase_Execute_TerminalBookingsDoNotBlockSlots(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		booking(10, "10:00", domain.StatusCancelled),
		booking(10, "11:00", domain.StatusCompleted),
	})

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 10, Date: testDate})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 10)
}

func TestUseCase_Execute_OtherBarberBookingsAreIgnored(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		booking(11, "10:00", domain.StatusConfirmed),
	})

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 10, Date: testDate})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 10)
}

func TestUseCase_Execute_PreservesGridOrder(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		booking(10, "09:00", domain.StatusPending),
	})

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 10, Date: testDate})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0])
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].IsBefore(resp.Slots[i]))
	}
}

func TestUseCase_Execute_UnknownBarber(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{BarberID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{BarberID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BarberID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
