package models

import "time"

// Client is a person or company the freelancer works for. Archived clients
// disappear from active views but stay valid targets for existing gigs and
// invoices; nothing is ever physically deleted.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;not null" json:"email"`

	Company string `gorm:"size:100" json:"company,omitempty"`
	Phone   string `gorm:"size:20" json:"phone,omitempty"`

	Archived bool `gorm:"default:false" json:"archived"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
