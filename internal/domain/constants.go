package domain

// Slot grid constants. The grid is fixed: hourly slots from opening to
// closing hour. Business-hours settings exist as admin data but do not
// drive slot generation.
const (
	GridOpenHour        = 9
	GridCloseHour       = 19
	SlotDurationMinutes = 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Validation constants
const (
	MaxNotesLength        = 500
	MaxCustomerNameLength = 200
)

// ActiveStatuses statuses that hold a slot.
// Used when checking slot availability.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses statuses that allow no further transition
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
