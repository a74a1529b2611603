package client

import (
	"context"
	"strings"

	domain "github.com/freelancedesk/freelance-tracker/internal/domain/client"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

type UpdateClient struct {
	repo domain.Repository
}

func NewUpdateClient(repo domain.Repository) *UpdateClient {
	return &UpdateClient{repo: repo}
}

// Execute merges only the supplied fields. Required fields stay required:
// patching name or email to an empty string is rejected.
func (uc *UpdateClient) Execute(
	ctx context.Context,
	id uint,
	patch domain.Patch,
) (*models.Client, error) {

	cl, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, httperr.ErrValidation("missing_name")
		}
		cl.Name = *patch.Name
	}
	if patch.Email != nil {
		if strings.TrimSpace(*patch.Email) == "" {
			return nil, httperr.ErrValidation("missing_email")
		}
		cl.Email = *patch.Email
	}
	if patch.Company != nil {
		cl.Company = *patch.Company
	}
	if patch.Phone != nil {
		cl.Phone = *patch.Phone
	}
	if patch.Archived != nil {
		cl.Archived = *patch.Archived
	}

	if err := uc.repo.Update(ctx, cl); err != nil {
		return nil, err
	}

	return cl, nil
}
