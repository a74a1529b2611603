// Package stats derives dashboard metrics from already-loaded record sets.
// Every function is pure: no I/O, no mutation of its input, and the input
// order is preserved — ordering belongs to whoever produced the slice.
package stats

import (
	"github.com/freelancedesk/freelance-tracker/internal/domain/gig"
	"github.com/freelancedesk/freelance-tracker/internal/domain/invoice"
	"github.com/freelancedesk/freelance-tracker/internal/models"
)

// RecentLimit is how many records the dashboard shows per recent list.
const RecentLimit = 5

func ActiveGigs(gigs []models.Gig) []models.Gig {
	out := make([]models.Gig, 0, len(gigs))
	for _, g := range gigs {
		if gig.Status(g.Status) == gig.StatusActive {
			out = append(out, g)
		}
	}
	return out
}

func PendingInvoices(invoices []models.Invoice) []models.Invoice {
	out := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if invoice.Pending(invoice.Status(inv.Status)) {
			out = append(out, inv)
		}
	}
	return out
}

// TotalRevenue sums paid invoices only. Draft, sent and overdue amounts are
// money that has not arrived yet.
func TotalRevenue(invoices []models.Invoice) float64 {
	var total float64
	for _, inv := range invoices {
		if invoice.Status(inv.Status) == invoice.StatusPaid {
			total += inv.Amount
		}
	}
	return total
}

func ActiveClients(clients []models.Client) []models.Client {
	out := make([]models.Client, 0, len(clients))
	for _, cl := range clients {
		if !cl.Archived {
			out = append(out, cl)
		}
	}
	return out
}

func RecentGigs(gigs []models.Gig, n int) []models.Gig {
	if n < 0 {
		n = 0
	}
	if n > len(gigs) {
		n = len(gigs)
	}
	return gigs[:n]
}

func RecentInvoices(invoices []models.Invoice, n int) []models.Invoice {
	if n < 0 {
		n = 0
	}
	if n > len(invoices) {
		n = len(invoices)
	}
	return invoices[:n]
}

// Summary is the dashboard payload: the four stat-card numbers plus the two
// recent-activity lists.
type Summary struct {
	TotalClients    int     `json:"total_clients"`
	ActiveGigs      int     `json:"active_gigs"`
	PendingInvoices int     `json:"pending_invoices"`
	TotalRevenue    float64 `json:"total_revenue"`

	RecentGigs     []models.Gig     `json:"recent_gigs"`
	RecentInvoices []models.Invoice `json:"recent_invoices"`
}

func BuildSummary(clients []models.Client, gigs []models.Gig, invoices []models.Invoice) Summary {
	return Summary{
		TotalClients:    len(clients),
		ActiveGigs:      len(ActiveGigs(gigs)),
		PendingInvoices: len(PendingInvoices(invoices)),
		TotalRevenue:    TotalRevenue(invoices),
		RecentGigs:      RecentGigs(gigs, RecentLimit),
		RecentInvoices:  RecentInvoices(invoices, RecentLimit),
	}
}
