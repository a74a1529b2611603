package invoice

import (
	"context"

	"github.com/freelancedesk/freelance-tracker/internal/models"
)

// Patch carries a partial update. client_id is deliberately absent: it is
// derived from the referenced gig and never settable by the caller.
type Patch struct {
	GigID      *uint    `json:"gig_id,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
	Status     *string  `json:"status,omitempty"`
	DueDate    *string  `json:"due_date,omitempty"`
	IssuedDate *string  `json:"issued_date,omitempty"`
}

type Repository interface {
	List(ctx context.Context) ([]models.Invoice, error)

	GetByID(ctx context.Context, id uint) (*models.Invoice, error)

	Create(ctx context.Context, inv *models.Invoice) error

	Update(ctx context.Context, inv *models.Invoice) error
}
