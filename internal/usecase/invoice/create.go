package invoice

import (
	"context"

	domainGig "github.com/freelancedesk/freelance-tracker/internal/domain/gig"
	domain "github.com/freelancedesk/freelance-tracker/internal/domain/invoice"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInvoiceInput struct {
	GigID uint

	// Amount is a pointer so "absent" and "zero" stay distinguishable.
	Amount *float64

	// Status is optional; empty defaults to draft.
	Status string

	DueDate    string
	IssuedDate string
}

// ======================================================
// USE CASE
// ======================================================

type CreateInvoice struct {
	invoices domain.Repository
	gigs     domainGig.Repository
}

func NewCreateInvoice(
	invoices domain.Repository,
	gigs domainGig.Repository,
) *CreateInvoice {
	return &CreateInvoice{
		invoices: invoices,
		gigs:     gigs,
	}
}

func (uc *CreateInvoice) Execute(
	ctx context.Context,
	in CreateInvoiceInput,
) (*models.Invoice, error) {

	if in.GigID == 0 {
		return nil, httperr.ErrValidation("missing_gig_id")
	}
	if in.Amount == nil {
		return nil, httperr.ErrValidation("missing_amount")
	}
	if *in.Amount < 0 {
		return nil, httperr.ErrValidation("negative_amount")
	}

	g, err := uc.gigs.GetByID(ctx, in.GigID)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, httperr.ErrValidation("gig_not_found")
		}
		return nil, err
	}

	status := domain.Status(in.Status)
	if status == "" {
		status = domain.InitialStatus()
	}
	if !domain.IsValid(status) {
		return nil, httperr.ErrValidation("invalid_invoice_status")
	}

	// client_id always mirrors the gig's client; the caller never sets it.
	inv := &models.Invoice{
		GigID:      g.ID,
		ClientID:   g.ClientID,
		Amount:     *in.Amount,
		Status:     string(status),
		DueDate:    in.DueDate,
		IssuedDate: in.IssuedDate,
	}

	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}
