package dashboard

import (
	"context"

	"github.com/freelancedesk/freelance-tracker/internal/cache"
	domainClient "github.com/freelancedesk/freelance-tracker/internal/domain/client"
	domainGig "github.com/freelancedesk/freelance-tracker/internal/domain/gig"
	domainInvoice "github.com/freelancedesk/freelance-tracker/internal/domain/invoice"
	"github.com/freelancedesk/freelance-tracker/internal/domain/stats"
)

type Summary struct {
	clients  domainClient.Repository
	gigs     domainGig.Repository
	invoices domainInvoice.Repository
	cache    *cache.SummaryCache
}

func NewSummary(
	clients domainClient.Repository,
	gigs domainGig.Repository,
	invoices domainInvoice.Repository,
	summaryCache *cache.SummaryCache,
) *Summary {
	return &Summary{
		clients:  clients,
		gigs:     gigs,
		invoices: invoices,
		cache:    summaryCache,
	}
}

func (uc *Summary) Execute(ctx context.Context) (stats.Summary, error) {

	if cached, ok := uc.cache.Get(ctx); ok {
		return *cached, nil
	}

	clients, err := uc.clients.List(ctx)
	if err != nil {
		return stats.Summary{}, err
	}

	gigs, err := uc.gigs.List(ctx)
	if err != nil {
		return stats.Summary{}, err
	}

	invoices, err := uc.invoices.List(ctx)
	if err != nil {
		return stats.Summary{}, err
	}

	summary := stats.BuildSummary(clients, gigs, invoices)
	uc.cache.Set(ctx, summary)

	return summary, nil
}
