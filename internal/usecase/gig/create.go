package gig

import (
	"context"
	"strings"

	domainClient "github.com/freelancedesk/freelance-tracker/internal/domain/client"
	domain "github.com/freelancedesk/freelance-tracker/internal/domain/gig"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateGigInput struct {
	Title       string
	Description string
	ClientID    uint

	// Status is optional; empty defaults to active.
	Status string

	Rate      *float64
	StartDate string
	EndDate   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateGig struct {
	gigs    domain.Repository
	clients domainClient.Repository
}

func NewCreateGig(
	gigs domain.Repository,
	clients domainClient.Repository,
) *CreateGig {
	return &CreateGig{
		gigs:    gigs,
		clients: clients,
	}
}

func (uc *CreateGig) Execute(
	ctx context.Context,
	in CreateGigInput,
) (*models.Gig, error) {

	if strings.TrimSpace(in.Title) == "" {
		return nil, httperr.ErrValidation("missing_title")
	}
	if in.ClientID == 0 {
		return nil, httperr.ErrValidation("missing_client_id")
	}

	// The referenced client must exist. Archived clients stay valid targets.
	if _, err := uc.clients.GetByID(ctx, in.ClientID); err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, httperr.ErrValidation("client_not_found")
		}
		return nil, err
	}

	status := domain.Status(in.Status)
	if status == "" {
		status = domain.InitialStatus()
	}
	if !domain.IsValid(status) {
		return nil, httperr.ErrValidation("invalid_gig_status")
	}

	if in.Rate != nil && *in.Rate < 0 {
		return nil, httperr.ErrValidation("negative_rate")
	}

	g := &models.Gig{
		ClientID:    in.ClientID,
		Title:       in.Title,
		Description: in.Description,
		Status:      string(status),
		Rate:        in.Rate,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}

	if err := uc.gigs.Create(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}
