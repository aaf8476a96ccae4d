package list_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moonbarber/MB-SiteService/internal/service/bookings/models"
)

func TestParseQuery(t *testing.T) {
	t.Run("full filter set", func(t *testing.T) {
		req, err := ParseQuery(url.Values{
			"barber":    {"10"},
			"startDate": {"2026-09-01"},
			"endDate":   {"2026-09-30"},
			"status":    {"pending"},
		})
		require.NoError(t, err)

		require.NotNil(t, req.BarberID)
		assert.Equal(t, int64(10), *req.BarberID)
		require.NotNil(t, req.StartDate)
		require.NotNil(t, req.EndDate)
		require.NotNil(t, req.Status)
		assert.Equal(t, "pending", *req.Status)
		assert.True(t, req.IncludeInactive)
	})

	t.Run("date sets both period bounds", func(t *testing.T) {
		req, err := ParseQuery(url.Values{"date": {"2026-09-15"}})
		require.NoError(t, err)

		require.NotNil(t, req.StartDate)
		require.NotNil(t, req.EndDate)
		assert.Equal(t, *req.StartDate, *req.EndDate)
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		tests := []struct {
			name  string
			query url.Values
		}{
			{"zero barber id", url.Values{"barber": {"0"}}},
			{"negative barber id", url.Values{"barber": {"-5"}}},
			{"non-numeric barber id", url.Values{"barber": {"abc"}}},
			{"malformed date", url.Values{"date": {"15.09.2026"}}},
			{"malformed startDate", url.Values{"startDate": {"not-a-date"}}},
			{"malformed endDate", url.Values{"endDate": {"2026-13-45"}}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req, err := ParseQuery(tt.query)
				assert.ErrorIs(t, err, ErrInvalidQuery)
				assert.Nil(t, req)
			})
		}
	})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingsService struct {
	calls int
}

func (f *fakeBookingsService) List(_ context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	f.calls++
	return models.FromDomainBookingList(nil), nil
}

func TestHandler_Handle_RejectsZeroBarberID(t *testing.T) {
	service := &fakeBookingsService{}
	h := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?barber=0", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, service.calls)
}
