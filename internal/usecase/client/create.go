package client

import (
	"context"
	"strings"

	domain "github.com/freelancedesk/freelance-tracker/internal/domain/client"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

type CreateClientInput struct {
	Name    string
	Email   string
	Company string
	Phone   string
}

type CreateClient struct {
	repo domain.Repository
}

func NewCreateClient(repo domain.Repository) *CreateClient {
	return &CreateClient{repo: repo}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	in CreateClientInput,
) (*models.Client, error) {

	if strings.TrimSpace(in.Name) == "" {
		return nil, httperr.ErrValidation("missing_name")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, httperr.ErrValidation("missing_email")
	}

	cl := &models.Client{
		Name:    in.Name,
		Email:   in.Email,
		Company: in.Company,
		Phone:   in.Phone,
	}

	if err := uc.repo.Create(ctx, cl); err != nil {
		return nil, err
	}

	return cl, nil
}
