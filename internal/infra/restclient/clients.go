package restclient

import (
	"context"
	"fmt"
	"net/http"

	domain "github.com/freelancedesk/freelance-tracker/internal/domain/client"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

type clientsAPI struct {
	c *Client
}

// Clients returns the client collection as a domain repository.
func (c *Client) Clients() domain.Repository {
	return &clientsAPI{c: c}
}

type createClientPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

func (a *clientsAPI) List(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := a.c.do(ctx, http.MethodGet, "/clients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *clientsAPI) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var out models.Client
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/clients/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *clientsAPI) Create(ctx context.Context, cl *models.Client) error {
	payload := createClientPayload{
		Name:    cl.Name,
		Email:   cl.Email,
		Company: cl.Company,
		Phone:   cl.Phone,
	}
	return a.c.do(ctx, http.MethodPost, "/clients", payload, cl)
}

func (a *clientsAPI) Update(ctx context.Context, cl *models.Client) error {
	// Sending the full field set through PATCH merges every field, which is
	// exactly what Update means for a repository-held record.
	patch := domain.Patch{
		Name:     &cl.Name,
		Email:    &cl.Email,
		Company:  &cl.Company,
		Phone:    &cl.Phone,
		Archived: &cl.Archived,
	}
	return a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/clients/%d", cl.ID), patch, cl)
}

// Compile-time check
var _ domain.Repository = (*clientsAPI)(nil)
