package client

import (
	"context"

	"github.com/freelancedesk/freelance-tracker/internal/models"
)

// Patch carries a partial update: only non-nil fields change.
type Patch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Company  *string `json:"company,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Archived *bool   `json:"archived,omitempty"`
}

type Repository interface {
	List(ctx context.Context) ([]models.Client, error)

	GetByID(ctx context.Context, id uint) (*models.Client, error)

	Create(ctx context.Context, cl *models.Client) error

	Update(ctx context.Context, cl *models.Client) error
}
