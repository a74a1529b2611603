package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freelancedesk/freelance-tracker/internal/models"
)

func TestTotalRevenue(t *testing.T) {
	tests := []struct {
		name     string
		invoices []models.Invoice
		want     float64
	}{
		{
			name:     "empty set",
			invoices: nil,
			want:     0,
		},
		{
			name: "only paid amounts count",
			invoices: []models.Invoice{
				{ID: 1, Amount: 500, Status: "paid"},
				{ID: 2, Amount: 200, Status: "sent"},
				{ID: 3, Amount: 300, Status: "draft"},
				{ID: 4, Amount: 50, Status: "overdue"},
			},
			want: 500,
		},
		{
			name: "multiple paid invoices sum",
			invoices: []models.Invoice{
				{ID: 1, Amount: 120.50, Status: "paid"},
				{ID: 2, Amount: 79.50, Status: "paid"},
			},
			want: 200,
		},
		{
			name: "all non-paid is zero",
			invoices: []models.Invoice{
				{ID: 1, Amount: 1000, Status: "sent"},
				{ID: 2, Amount: 1000, Status: "overdue"},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalRevenue(tt.invoices))
		})
	}
}

func TestActiveGigs(t *testing.T) {
	gigs := []models.Gig{
		{ID: 1, Status: "active"},
		{ID: 2, Status: "completed"},
		{ID: 3, Status: "active"},
		{ID: 4, Status: "cancelled"},
	}

	active := ActiveGigs(gigs)
	require.Len(t, active, 2)
	for _, g := range active {
		assert.Equal(t, "active", g.Status)
	}

	// Order preserved, input untouched.
	assert.Equal(t, uint(1), active[0].ID)
	assert.Equal(t, uint(3), active[1].ID)
	assert.Len(t, gigs, 4)

	// Idempotent on its own output.
	assert.Equal(t, active, ActiveGigs(active))
}

func TestPendingInvoices(t *testing.T) {
	invoices := []models.Invoice{
		{ID: 1, Status: "paid"},
		{ID: 2, Status: "sent"},
		{ID: 3, Status: "draft"},
		{ID: 4, Status: "overdue"},
	}

	pending := PendingInvoices(invoices)
	require.Len(t, pending, 2)
	assert.Equal(t, uint(2), pending[0].ID)
	assert.Equal(t, uint(4), pending[1].ID)
}

func TestActiveClients(t *testing.T) {
	clients := []models.Client{
		{ID: 1, Name: "Acme"},
		{ID: 2, Name: "Globex", Archived: true},
		{ID: 3, Name: "Initech"},
	}

	active := ActiveClients(clients)
	require.Len(t, active, 2)
	assert.Equal(t, uint(1), active[0].ID)
	assert.Equal(t, uint(3), active[1].ID)
	for _, cl := range active {
		assert.False(t, cl.Archived)
	}
}

func TestRecents(t *testing.T) {
	gigs := []models.Gig{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.Len(t, RecentGigs(gigs, 2), 2)
	assert.Equal(t, uint(1), RecentGigs(gigs, 2)[0].ID)
	assert.Len(t, RecentGigs(gigs, 10), 3)
	assert.Empty(t, RecentGigs(gigs, 0))
	assert.Empty(t, RecentGigs(gigs, -1))

	invoices := []models.Invoice{{ID: 7}, {ID: 8}}
	assert.Len(t, RecentInvoices(invoices, 1), 1)
	assert.Equal(t, uint(7), RecentInvoices(invoices, 1)[0].ID)
}

func TestBuildSummary(t *testing.T) {
	clients := []models.Client{
		{ID: 1, Name: "Acme"},
	}
	gigs := []models.Gig{
		{ID: 1, ClientID: 1, Title: "Logo", Status: "active"},
	}
	invoices := []models.Invoice{
		{ID: 1, GigID: 1, ClientID: 1, Amount: 500, Status: "paid"},
		{ID: 2, GigID: 1, ClientID: 1, Amount: 200, Status: "sent"},
	}

	s := BuildSummary(clients, gigs, invoices)

	assert.Equal(t, 1, s.TotalClients)
	assert.Equal(t, 1, s.ActiveGigs)
	assert.Equal(t, 1, s.PendingInvoices)
	assert.Equal(t, 500.0, s.TotalRevenue)
	require.Len(t, s.RecentGigs, 1)
	require.Len(t, s.RecentInvoices, 2)
	assert.Equal(t, uint(1), s.RecentInvoices[0].ID)

	// Deterministic: same input, same output.
	assert.Equal(t, s, BuildSummary(clients, gigs, invoices))
}
