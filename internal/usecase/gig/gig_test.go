package gig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/freelancedesk/freelance-tracker/internal/domain/gig"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/infra/repository"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

func setup(t *testing.T) (*CreateGig, *UpdateGig, *repository.ClientMemoryRepository, *repository.GigMemoryRepository) {
	t.Helper()

	clients := repository.NewClientMemoryRepository()
	gigs := repository.NewGigMemoryRepository()

	require.NoError(t, clients.Create(context.Background(), &models.Client{
		Name:  "Acme",
		Email: "billing@acme.test",
	}))

	return NewCreateGig(gigs, clients), NewUpdateGig(gigs, clients), clients, gigs
}

func TestCreateGigDefaultsToActive(t *testing.T) {
	createUC, _, _, _ := setup(t)

	g, err := createUC.Execute(context.Background(), CreateGigInput{
		Title:    "Redesign",
		ClientID: 1,
	})
	require.NoError(t, err)

	assert.NotZero(t, g.ID)
	assert.Equal(t, "active", g.Status)
	assert.Equal(t, uint(1), g.ClientID)
}

func TestCreateGigRequiresTitle(t *testing.T) {
	createUC, _, _, _ := setup(t)

	_, err := createUC.Execute(context.Background(), CreateGigInput{
		ClientID: 1,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.True(t, httperr.IsCode(err, "missing_title"))
}

func TestCreateGigUnknownClient(t *testing.T) {
	createUC, _, _, _ := setup(t)

	_, err := createUC.Execute(context.Background(), CreateGigInput{
		Title:    "Redesign",
		ClientID: 42,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.True(t, httperr.IsCode(err, "client_not_found"))
}

func TestCreateGigRejectsBogusStatus(t *testing.T) {
	createUC, _, _, _ := setup(t)

	_, err := createUC.Execute(context.Background(), CreateGigInput{
		Title:    "Redesign",
		ClientID: 1,
		Status:   "bogus",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestUpdateGigStatusRoundTrip(t *testing.T) {
	createUC, updateUC, _, _ := setup(t)

	g, err := createUC.Execute(context.Background(), CreateGigInput{
		Title:    "Redesign",
		ClientID: 1,
	})
	require.NoError(t, err)

	completed := "completed"
	g, err = updateUC.Execute(context.Background(), g.ID, domain.Patch{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, "completed", g.Status)

	// Reopening is permitted.
	active := "active"
	g, err = updateUC.Execute(context.Background(), g.ID, domain.Patch{Status: &active})
	require.NoError(t, err)
	assert.Equal(t, "active", g.Status)
}

func TestUpdateGigBogusStatus(t *testing.T) {
	createUC, updateUC, _, gigs := setup(t)

	g, err := createUC.Execute(context.Background(), CreateGigInput{
		Title:    "Redesign",
		ClientID: 1,
	})
	require.NoError(t, err)

	bogus := "bogus"
	_, err = updateUC.Execute(context.Background(), g.ID, domain.Patch{Status: &bogus})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	// The stored record is untouched.
	stored, err := gigs.GetByID(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", stored.Status)
}

func TestUpdateGigPartialMerge(t *testing.T) {
	createUC, updateUC, _, _ := setup(t)

	rate := 85.0
	g, err := createUC.Execute(context.Background(), CreateGigInput{
		Title:       "Redesign",
		Description: "Full brand refresh",
		ClientID:    1,
		Rate:        &rate,
	})
	require.NoError(t, err)

	title := "Rebrand"
	g, err = updateUC.Execute(context.Background(), g.ID, domain.Patch{Title: &title})
	require.NoError(t, err)

	// Only the supplied field changed.
	assert.Equal(t, "Rebrand", g.Title)
	assert.Equal(t, "Full brand refresh", g.Description)
	require.NotNil(t, g.Rate)
	assert.Equal(t, 85.0, *g.Rate)
}

func TestUpdateGigNotFound(t *testing.T) {
	_, updateUC, _, _ := setup(t)

	title := "Rebrand"
	_, err := updateUC.Execute(context.Background(), 99, domain.Patch{Title: &title})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
