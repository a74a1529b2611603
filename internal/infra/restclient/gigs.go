package restclient

import (
	"context"
	"fmt"
	"net/http"

	domain "github.com/freelancedesk/freelance-tracker/internal/domain/gig"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

type gigsAPI struct {
	c *Client
}

func (c *Client) Gigs() domain.Repository {
	return &gigsAPI{c: c}
}

type createGigPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ClientID    uint     `json:"client_id"`
	Status      string   `json:"status,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
}

func (a *gigsAPI) List(ctx context.Context) ([]models.Gig, error) {
	var out []models.Gig
	if err := a.c.do(ctx, http.MethodGet, "/gigs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *gigsAPI) GetByID(ctx context.Context, id uint) (*models.Gig, error) {
	var out models.Gig
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/gigs/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *gigsAPI) Create(ctx context.Context, g *models.Gig) error {
	payload := createGigPayload{
		Title:       g.Title,
		Description: g.Description,
		ClientID:    g.ClientID,
		Status:      g.Status,
		Rate:        g.Rate,
		StartDate:   g.StartDate,
		EndDate:     g.EndDate,
	}
	return a.c.do(ctx, http.MethodPost, "/gigs", payload, g)
}

func (a *gigsAPI) Update(ctx context.Context, g *models.Gig) error {
	patch := domain.Patch{
		Title:       &g.Title,
		Description: &g.Description,
		ClientID:    &g.ClientID,
		Status:      &g.Status,
		Rate:        g.Rate,
		StartDate:   &g.StartDate,
		EndDate:     &g.EndDate,
	}
	return a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/gigs/%d", g.ID), patch, g)
}

// Compile-time check
var _ domain.Repository = (*gigsAPI)(nil)
