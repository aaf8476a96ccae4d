package domain

import "time"

// Activity one entry of the admin activity log
type Activity struct {
	ID          int64
	Description string
	CreatedAt   time.Time
}
