package domain

import "time"

// Service represents a barbershop service offered on the public site
type Service struct {
	ID              int64
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Category        string
	Image           *string
	Active          bool
	Featured        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TeamMember represents a barber shown on the public site
type TeamMember struct {
	ID          int64
	Name        string
	Role        string
	Bio         *string
	ImageURL    *string
	Specialties []string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
