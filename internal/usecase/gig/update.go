package gig

import (
	"context"
	"strings"

	domainClient "github.com/freelancedesk/freelance-tracker/internal/domain/client"
	domain "github.com/freelancedesk/freelance-tracker/internal/domain/gig"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

type UpdateGig struct {
	gigs    domain.Repository
	clients domainClient.Repository
}

func NewUpdateGig(
	gigs domain.Repository,
	clients domainClient.Repository,
) *UpdateGig {
	return &UpdateGig{
		gigs:    gigs,
		clients: clients,
	}
}

// Execute merges only the supplied fields; a status change must pass the
// workflow before anything is persisted. A rejected update leaves the stored
// record untouched.
func (uc *UpdateGig) Execute(
	ctx context.Context,
	id uint,
	patch domain.Patch,
) (*models.Gig, error) {

	g, err := uc.gigs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, httperr.ErrValidation("missing_title")
		}
		g.Title = *patch.Title
	}
	if patch.Description != nil {
		g.Description = *patch.Description
	}

	if patch.ClientID != nil {
		if _, err := uc.clients.GetByID(ctx, *patch.ClientID); err != nil {
			if httperr.IsKind(err, httperr.KindNotFound) {
				return nil, httperr.ErrValidation("client_not_found")
			}
			return nil, err
		}
		g.ClientID = *patch.ClientID
	}

	if patch.Status != nil {
		if err := domain.Transition(
			domain.Status(g.Status),
			domain.Status(*patch.Status),
		); err != nil {
			return nil, err
		}
		g.Status = *patch.Status
	}

	if patch.Rate != nil {
		if *patch.Rate < 0 {
			return nil, httperr.ErrValidation("negative_rate")
		}
		g.Rate = patch.Rate
	}
	if patch.StartDate != nil {
		g.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		g.EndDate = *patch.EndDate
	}

	if err := uc.gigs.Update(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}
