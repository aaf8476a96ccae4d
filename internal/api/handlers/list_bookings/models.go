package list_bookings

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/moonbarber/MB-SiteService/internal/domain"
	"github.com/moonbarber/MB-SiteService/internal/service/bookings/models"
)

// ErrInvalidQuery возвращается при некорректных query-параметрах фильтрации
var ErrInvalidQuery = errors.New("list_bookings: invalid query parameter")

// ParseQuery разбирает query-параметры фильтрации записей.
// Поддерживаются: barber, startDate, endDate, date (синоним пары start/end), status.
func ParseQuery(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		// Админка видит все записи, включая завершенные и отмененные
		IncludeInactive: true,
	}

	if raw := query.Get("barber"); raw != "" {
		barberID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || barberID <= 0 {
			return nil, fmt.Errorf("%w: barber must be a positive integer, got %q", ErrInvalidQuery, raw)
		}
		req.BarberID = &barberID
	}

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q is not in format %s", ErrInvalidQuery, raw, domain.DateFormat)
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	if raw := query.Get("startDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: startDate %q is not in format %s", ErrInvalidQuery, raw, domain.DateFormat)
		}
		req.StartDate = &date
	}

	if raw := query.Get("endDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: endDate %q is not in format %s", ErrInvalidQuery, raw, domain.DateFormat)
		}
		req.EndDate = &date
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	return req, nil
}
