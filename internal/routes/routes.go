package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/freelancedesk/freelance-tracker/internal/cache"
	domainClient "github.com/freelancedesk/freelance-tracker/internal/domain/client"
	domainGig "github.com/freelancedesk/freelance-tracker/internal/domain/gig"
	domainInvoice "github.com/freelancedesk/freelance-tracker/internal/domain/invoice"
	"github.com/freelancedesk/freelance-tracker/internal/handlers"
	ucClient "github.com/freelancedesk/freelance-tracker/internal/usecase/client"
	ucDashboard "github.com/freelancedesk/freelance-tracker/internal/usecase/dashboard"
	ucGig "github.com/freelancedesk/freelance-tracker/internal/usecase/gig"
	ucInvoice "github.com/freelancedesk/freelance-tracker/internal/usecase/invoice"
)

// Deps are the abstract stores the routes are wired against. Production hands
// in the GORM repositories; tests hand in the in-memory ones.
type Deps struct {
	Clients  domainClient.Repository
	Gigs     domainGig.Repository
	Invoices domainInvoice.Repository
	Cache    *cache.SummaryCache
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// USE CASES
	// ======================================================
	createClientUC := ucClient.NewCreateClient(deps.Clients)
	updateClientUC := ucClient.NewUpdateClient(deps.Clients)

	createGigUC := ucGig.NewCreateGig(deps.Gigs, deps.Clients)
	updateGigUC := ucGig.NewUpdateGig(deps.Gigs, deps.Clients)

	createInvoiceUC := ucInvoice.NewCreateInvoice(deps.Invoices, deps.Gigs)
	updateInvoiceUC := ucInvoice.NewUpdateInvoice(deps.Invoices, deps.Gigs)

	summaryUC := ucDashboard.NewSummary(deps.Clients, deps.Gigs, deps.Invoices, deps.Cache)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(deps.Clients, createClientUC, updateClientUC, deps.Cache)
	gigHandler := handlers.NewGigHandler(deps.Gigs, createGigUC, updateGigUC, deps.Cache)
	invoiceHandler := handlers.NewInvoiceHandler(deps.Invoices, createInvoiceUC, updateInvoiceUC, deps.Cache)
	dashboardHandler := handlers.NewDashboardHandler(summaryUC)

	// ======================================================
	// ROUTES
	// ======================================================
	clients := r.Group("/clients")
	{
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.Get)
		clients.POST("", clientHandler.Create)
		clients.PATCH("/:id", clientHandler.Update)
	}

	gigs := r.Group("/gigs")
	{
		gigs.GET("", gigHandler.List)
		gigs.GET("/:id", gigHandler.Get)
		gigs.POST("", gigHandler.Create)
		gigs.PATCH("/:id", gigHandler.Update)
	}

	invoices := r.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.POST("", invoiceHandler.Create)
		invoices.PATCH("/:id", invoiceHandler.Update)
	}

	r.GET("/dashboard/summary", dashboardHandler.Summary)
}
