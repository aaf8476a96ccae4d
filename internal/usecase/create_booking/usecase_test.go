package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonbarber/MB-SiteService/internal/domain"
	bookingRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/booking"
	serviceRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/service"
	teamRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/team"
	"github.com/moonbarber/MB-SiteService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeActivityRepo struct {
	mu      sync.Mutex
	entries []string
}

func (f *fakeActivityRepo) Create(_ context.Context, description string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, description)
	return nil
}

// fakeBookingRepo имитирует поведение частичного уникального индекса:
// вторая активная запись на тот же слот отклоняется. Мьютекс делает
// проверку и вставку атомарными, как это делает индекс в базе.
type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking

	// failCreateWithConflict имитирует гонку: проверка слота прошла,
	// а вставка уперлась в индекс
	failCreateWithConflict bool
}

func slotKey(barberID int64, date time.Time, startTime types.TimeString) string {
	return fmt.Sprintf("%d|%s|%s", barberID, date.Format(domain.DateFormat), startTime)
}

func (f *fakeBookingRepo) FindActiveBySlot(_ context.Context, barberID int64, date time.Time, startTime types.TimeString) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := slotKey(barberID, date, startTime)
	for _, b := range f.bookings {
		if b.IsActive() && slotKey(b.BarberID, b.BookingDate, b.StartTime) == key {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCreateWithConflict {
		return nil, bookingRepo.ErrSlotTaken
	}

	key := slotKey(booking.BarberID, booking.BookingDate, booking.StartTime)
	for _, b := range f.bookings {
		if b.IsActive() && slotKey(b.BarberID, b.BookingDate, b.StartTime) == key {
			return nil, bookingRepo.ErrSlotTaken
		}
	}

	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.bookings = append(f.bookings, booking)
	return booking, nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	service, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return service, nil
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

func newTestUseCase(bookings *fakeBookingRepo) (*UseCase, *fakeActivityRepo) {
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Classic Haircut", Price: 35, DurationMinutes: 60, Active: true},
		2: {ID: 2, Name: "Retired Cut", Active: false},
	}}
	team := &fakeTeamRepo{members: map[int64]*domain.TeamMember{
		10: {ID: 10, Name: "James Wilson", Role: "Master Barber", Available: true},
		11: {ID: 11, Name: "Mike Brown", Role: "Barber", Available: true},
		12: {ID: 12, Name: "On Leave", Role: "Barber", Available: false},
	}}
	activity := &fakeActivityRepo{}

	return NewUseCase(bookings, services, team, activity, fakeTxManager{}, nopLogger{}), activity
}

func validRequest() *Request {
	return &Request{
		ServiceID:     1,
		BarberID:      10,
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		CustomerPhone: "+1 555 0100",
		Date:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
	}
}

func TestUseCase_Execute_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, activity := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Classic Haircut", resp.ServiceName)
	assert.Equal(t, "James Wilson", resp.BarberName)
	assert.NotZero(t, resp.ID)
	assert.Len(t, activity.entries, 1)
}

func TestUseCase_Execute_RejectsTakenSlot(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, _ := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Та же дата, то же время, тот же мастер
	req := validRequest()
	req.CustomerName = "Jane Roe"
	req.CustomerEmail = "jane@example.com"

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_AllowsSameSlotForAnotherBarber(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, _ := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.BarberID = 11

	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_AllowsSameTimeOnAnotherDate(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, _ := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Date = req.Date.AddDate(0, 0, 1)

	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_CancelledBookingFreesSlot(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, _ := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Отменяем запись напрямую в хранилище
	for _, b := range repo.bookings {
		if b.ID == resp.ID {
			b.Status = domain.StatusCancelled
		}
	}

	_, err = uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_Execute_ConcurrentAttemptsYieldSingleBooking(t *testing.T) {
	const attempts = 16

	repo := &fakeBookingRepo{}
	uc, _ := newTestUseCase(repo)

	var wg sync.WaitGroup
	results := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			req := validRequest()
			req.CustomerName = fmt.Sprintf("Customer %d", n)
			req.CustomerEmail = fmt.Sprintf("customer%d@example.com", n)

			_, results[n] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotNotAvailable):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)

	// В хранилище ровно одна активная запись на слот
	active := 0
	for _, b := range repo.bookings {
		if b.IsActive() {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestUseCase_Execute_MapsIndexConflictToSlotNotAvailable(t *testing.T) {
	// Проверка слота ничего не нашла, но вставка уперлась в uq_bookings_active_slot
	repo := &fakeBookingRepo{failCreateWithConflict: true}
	uc, _ := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_RejectsInactiveService(t *testing.T) {
	uc, _ := newTestUseCase(&fakeBookingRepo{})

	req := validRequest()
	req.ServiceID = 2

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_RejectsUnknownService(t *testing.T) {
	uc, _ := newTestUseCase(&fakeBookingRepo{})

	req := validRequest()
	req.ServiceID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_RejectsUnavailableBarber(t *testing.T) {
	uc, _ := newTestUseCase(&fakeBookingRepo{})

	req := validRequest()
	req.BarberID = 12

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	longNotes := make([]byte, domain.MaxNotesLength+1)
	for i := range longNotes {
		longNotes[i] = 'x'
	}
	notes := string(longNotes)

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"empty customer name", func(r *Request) { r.CustomerName = "  " }, ErrInvalidInput},
		{"missing email", func(r *Request) { r.CustomerEmail = "" }, ErrInvalidInput},
		{"malformed email", func(r *Request) { r.CustomerEmail = "not-an-email" }, ErrInvalidInput},
		{"email without dot in domain", func(r *Request) { r.CustomerEmail = "a@b" }, ErrInvalidInput},
		{"missing phone", func(r *Request) { r.CustomerPhone = "" }, ErrInvalidInput},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"empty time", func(r *Request) { r.StartTime = "" }, ErrInvalidInput},
		{"time before opening", func(r *Request) { r.StartTime = "08:00" }, ErrInvalidTimeSlot},
		{"time at closing", func(r *Request) { r.StartTime = "19:00" }, ErrInvalidTimeSlot},
		{"half-hour label", func(r *Request) { r.StartTime = "10:30" }, ErrInvalidTimeSlot},
		{"notes too long", func(r *Request) { r.Notes = &notes }, ErrInvalidInput},
		{"zero service id", func(r *Request) { r.ServiceID = 0 }, ErrInvalidInput},
		{"negative barber id", func(r *Request) { r.BarberID = -1 }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(&fakeBookingRepo{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
