package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/freelancedesk/freelance-tracker/internal/cache"
	domain "github.com/freelancedesk/freelance-tracker/internal/domain/invoice"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/httpresp"
	ucInvoice "github.com/freelancedesk/freelance-tracker/internal/usecase/invoice"
)

type InvoiceHandler struct {
	repo     domain.Repository
	createUC *ucInvoice.CreateInvoice
	updateUC *ucInvoice.UpdateInvoice
	cache    *cache.SummaryCache
}

func NewInvoiceHandler(
	repo domain.Repository,
	createUC *ucInvoice.CreateInvoice,
	updateUC *ucInvoice.UpdateInvoice,
	summaryCache *cache.SummaryCache,
) *InvoiceHandler {
	return &InvoiceHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		cache:    summaryCache,
	}
}

// --------- Requests ---------

// client_id is absent on purpose: the server derives it from the gig.
type CreateInvoiceRequest struct {
	GigID      uint     `json:"gig_id" binding:"required"`
	Amount     *float64 `json:"amount" binding:"required"`
	Status     string   `json:"status"`
	DueDate    string   `json:"due_date"`
	IssuedDate string   `json:"issued_date"`
}

// --------- Handlers ---------

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_invoices", "Could not list invoices.")
		return
	}
	httpresp.List(c, invoices)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid invoice id.")
		return
	}

	inv, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.OK(c, inv)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	inv, err := h.createUC.Execute(c.Request.Context(), ucInvoice.CreateInvoiceInput{
		GigID:      req.GigID,
		Amount:     req.Amount,
		Status:     req.Status,
		DueDate:    req.DueDate,
		IssuedDate: req.IssuedDate,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.Created(c, inv)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid invoice id.")
		return
	}

	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	inv, err := h.updateUC.Execute(c.Request.Context(), id, patch)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.OK(c, inv)
}
