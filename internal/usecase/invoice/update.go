package invoice

import (
	"context"

	domainGig "github.com/freelancedesk/freelance-tracker/internal/domain/gig"
	domain "github.com/freelancedesk/freelance-tracker/internal/domain/invoice"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

type UpdateInvoice struct {
	invoices domain.Repository
	gigs     domainGig.Repository
}

func NewUpdateInvoice(
	invoices domain.Repository,
	gigs domainGig.Repository,
) *UpdateInvoice {
	return &UpdateInvoice{
		invoices: invoices,
		gigs:     gigs,
	}
}

// Execute merges only the supplied fields. Moving the invoice to another gig
// re-derives client_id from that gig; a status change must pass the workflow.
func (uc *UpdateInvoice) Execute(
	ctx context.Context,
	id uint,
	patch domain.Patch,
) (*models.Invoice, error) {

	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.GigID != nil {
		g, err := uc.gigs.GetByID(ctx, *patch.GigID)
		if err != nil {
			if httperr.IsKind(err, httperr.KindNotFound) {
				return nil, httperr.ErrValidation("gig_not_found")
			}
			return nil, err
		}
		inv.GigID = g.ID
		inv.ClientID = g.ClientID
	}

	if patch.Amount != nil {
		if *patch.Amount < 0 {
			return nil, httperr.ErrValidation("negative_amount")
		}
		inv.Amount = *patch.Amount
	}

	if patch.Status != nil {
		if err := domain.Transition(
			domain.Status(inv.Status),
			domain.Status(*patch.Status),
		); err != nil {
			return nil, err
		}
		inv.Status = *patch.Status
	}

	if patch.DueDate != nil {
		inv.DueDate = *patch.DueDate
	}
	if patch.IssuedDate != nil {
		inv.IssuedDate = *patch.IssuedDate
	}

	if err := uc.invoices.Update(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}
