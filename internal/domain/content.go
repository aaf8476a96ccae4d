package domain

import "time"

// GalleryImage represents an uploaded photo shown in the public gallery
type GalleryImage struct {
	ID        int64
	Title     string
	URL       string
	CreatedAt time.Time
}

// Review represents a customer review; only approved reviews are public
type Review struct {
	ID           int64
	CustomerName string
	Rating       int
	Text         string
	Approved     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DayHours opening hours for a single weekday
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// BusinessHours opening hours for the whole week
type BusinessHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// Notifications admin notification toggles
type Notifications struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// ContactInfo public contact block of the site
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// SocialMedia public social links
type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

// Settings single settings document of the shop.
// Exactly one row exists; updates are upserts.
type Settings struct {
	ID            int64
	BusinessHours BusinessHours
	Notifications Notifications
	Contact       ContactInfo
	Social        SocialMedia
	UpdatedAt     time.Time
}
