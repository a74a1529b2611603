package invoice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/freelancedesk/freelance-tracker/internal/domain/invoice"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/infra/repository"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

func setup(t *testing.T) (*CreateInvoice, *UpdateInvoice, *repository.GigMemoryRepository, *repository.InvoiceMemoryRepository) {
	t.Helper()

	gigs := repository.NewGigMemoryRepository()
	invoices := repository.NewInvoiceMemoryRepository()

	// Gig 1 belongs to client 7, gig 2 to client 9.
	require.NoError(t, gigs.Create(context.Background(), &models.Gig{
		ClientID: 7, Title: "Logo", Status: "active",
	}))
	require.NoError(t, gigs.Create(context.Background(), &models.Gig{
		ClientID: 9, Title: "Website", Status: "active",
	}))

	return NewCreateInvoice(invoices, gigs), NewUpdateInvoice(invoices, gigs), gigs, invoices
}

func amount(v float64) *float64 { return &v }

func TestCreateInvoiceDerivesClientID(t *testing.T) {
	createUC, _, _, _ := setup(t)

	inv, err := createUC.Execute(context.Background(), CreateInvoiceInput{
		GigID:  1,
		Amount: amount(500),
	})
	require.NoError(t, err)

	assert.NotZero(t, inv.ID)
	assert.Equal(t, uint(7), inv.ClientID)
	assert.Equal(t, "draft", inv.Status)
}

func TestCreateInvoiceValidation(t *testing.T) {
	createUC, _, _, _ := setup(t)

	tests := []struct {
		name string
		in   CreateInvoiceInput
		code string
	}{
		{"missing gig", CreateInvoiceInput{Amount: amount(100)}, "missing_gig_id"},
		{"unknown gig", CreateInvoiceInput{GigID: 42, Amount: amount(100)}, "gig_not_found"},
		{"missing amount", CreateInvoiceInput{GigID: 1}, "missing_amount"},
		{"negative amount", CreateInvoiceInput{GigID: 1, Amount: amount(-5)}, "negative_amount"},
		{"bogus status", CreateInvoiceInput{GigID: 1, Amount: amount(100), Status: "bogus"}, "invalid_invoice_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := createUC.Execute(context.Background(), tt.in)
			require.Error(t, err)
			assert.True(t, httperr.IsKind(err, httperr.KindValidation))
			assert.True(t, httperr.IsCode(err, tt.code))
		})
	}
}

func TestUpdateInvoiceStatus(t *testing.T) {
	createUC, updateUC, _, _ := setup(t)

	inv, err := createUC.Execute(context.Background(), CreateInvoiceInput{
		GigID:  1,
		Amount: amount(500),
	})
	require.NoError(t, err)

	// Any enumerated status is reachable, in any order.
	for _, status := range []string{"sent", "paid", "overdue", "draft", "paid"} {
		s := status
		inv, err = updateUC.Execute(context.Background(), inv.ID, domain.Patch{Status: &s})
		require.NoError(t, err)
		assert.Equal(t, status, inv.Status)
	}
}

func TestUpdateInvoiceRederivesClientID(t *testing.T) {
	createUC, updateUC, _, _ := setup(t)

	inv, err := createUC.Execute(context.Background(), CreateInvoiceInput{
		GigID:  1,
		Amount: amount(500),
	})
	require.NoError(t, err)
	require.Equal(t, uint(7), inv.ClientID)

	gigID := uint(2)
	inv, err = updateUC.Execute(context.Background(), inv.ID, domain.Patch{GigID: &gigID})
	require.NoError(t, err)
	assert.Equal(t, uint(2), inv.GigID)
	assert.Equal(t, uint(9), inv.ClientID)
}

func TestUpdateInvoiceNotFoundLeavesStoreUntouched(t *testing.T) {
	createUC, updateUC, _, invoices := setup(t)

	_, err := createUC.Execute(context.Background(), CreateInvoiceInput{
		GigID:  1,
		Amount: amount(500),
	})
	require.NoError(t, err)

	before, err := invoices.List(context.Background())
	require.NoError(t, err)

	paid := "paid"
	_, err = updateUC.Execute(context.Background(), 99, domain.Patch{Status: &paid})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	after, err := invoices.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
