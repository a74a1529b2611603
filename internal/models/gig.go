package models

import "time"

type Gig struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"not null" json:"client_id"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"size:500" json:"description,omitempty"`

	Status string `gorm:"size:20;default:'active'" json:"status"`

	// Hourly rate. Nil means not agreed yet.
	Rate *float64 `json:"rate,omitempty"`

	// Calendar dates in YYYY-MM-DD form, exactly as the frontend sends them.
	// EndDate should not precede StartDate when both are set; the store does
	// not reject violations.
	StartDate string `gorm:"size:10" json:"start_date,omitempty"`
	EndDate   string `gorm:"size:10" json:"end_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
