package restclient

import (
	"context"
	"fmt"
	"net/http"

	domain "github.com/freelancedesk/freelance-tracker/internal/domain/invoice"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

type invoicesAPI struct {
	c *Client
}

func (c *Client) Invoices() domain.Repository {
	return &invoicesAPI{c: c}
}

type createInvoicePayload struct {
	GigID      uint     `json:"gig_id"`
	Amount     *float64 `json:"amount"`
	Status     string   `json:"status,omitempty"`
	DueDate    string   `json:"due_date,omitempty"`
	IssuedDate string   `json:"issued_date,omitempty"`
}

func (a *invoicesAPI) List(ctx context.Context) ([]models.Invoice, error) {
	var out []models.Invoice
	if err := a.c.do(ctx, http.MethodGet, "/invoices", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *invoicesAPI) GetByID(ctx context.Context, id uint) (*models.Invoice, error) {
	var out models.Invoice
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/invoices/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *invoicesAPI) Create(ctx context.Context, inv *models.Invoice) error {
	payload := createInvoicePayload{
		GigID:      inv.GigID,
		Amount:     &inv.Amount,
		Status:     inv.Status,
		DueDate:    inv.DueDate,
		IssuedDate: inv.IssuedDate,
	}
	return a.c.do(ctx, http.MethodPost, "/invoices", payload, inv)
}

func (a *invoicesAPI) Update(ctx context.Context, inv *models.Invoice) error {
	// client_id is not in the patch: the server derives it from the gig.
	patch := domain.Patch{
		GigID:      &inv.GigID,
		Amount:     &inv.Amount,
		Status:     &inv.Status,
		DueDate:    &inv.DueDate,
		IssuedDate: &inv.IssuedDate,
	}
	return a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/invoices/%d", inv.ID), patch, inv)
}

// Compile-time check
var _ domain.Repository = (*invoicesAPI)(nil)
