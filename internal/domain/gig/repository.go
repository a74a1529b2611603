package gig

import (
	"context"

	"github.com/freelancedesk/freelance-tracker/internal/models"
)

// Patch carries a partial update: only non-nil fields change. ID and
// created_at are never patchable.
type Patch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	ClientID    *uint    `json:"client_id,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
}

type Repository interface {
	List(ctx context.Context) ([]models.Gig, error)

	GetByID(ctx context.Context, id uint) (*models.Gig, error)

	Create(ctx context.Context, g *models.Gig) error

	Update(ctx context.Context, g *models.Gig) error
}
