package domain

import "time"

// AdminUser back-office account. Password is stored as a bcrypt hash.
type AdminUser struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	LastLoginAt  *time.Time
	CreatedAt    time.Time
}
