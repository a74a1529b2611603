package models

import "time"

type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GigID uint `gorm:"not null" json:"gig_id"`

	// ClientID mirrors the referenced gig's client. It is derived on create
	// (and re-derived when gig_id changes), never set by the caller.
	ClientID uint `gorm:"not null" json:"client_id"`

	Amount float64 `gorm:"not null" json:"amount"`

	Status string `gorm:"size:20;default:'draft'" json:"status"`

	DueDate    string `gorm:"size:10" json:"due_date,omitempty"`
	IssuedDate string `gorm:"size:10" json:"issued_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
