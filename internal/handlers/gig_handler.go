package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/freelancedesk/freelance-tracker/internal/cache"
	domain "github.com/freelancedesk/freelance-tracker/internal/domain/gig"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/httpresp"
	ucGig "github.com/freelancedesk/freelance-tracker/internal/usecase/gig"
)

type GigHandler struct {
	repo     domain.Repository
	createUC *ucGig.CreateGig
	updateUC *ucGig.UpdateGig
	cache    *cache.SummaryCache
}

func NewGigHandler(
	repo domain.Repository,
	createUC *ucGig.CreateGig,
	updateUC *ucGig.UpdateGig,
	summaryCache *cache.SummaryCache,
) *GigHandler {
	return &GigHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		cache:    summaryCache,
	}
}

// --------- Requests ---------

type CreateGigRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	ClientID    uint     `json:"client_id" binding:"required"`
	Status      string   `json:"status"`
	Rate        *float64 `json:"rate"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
}

// --------- Handlers ---------

func (h *GigHandler) List(c *gin.Context) {
	gigs, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_gigs", "Could not list gigs.")
		return
	}
	httpresp.List(c, gigs)
}

func (h *GigHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid gig id.")
		return
	}

	g, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.OK(c, g)
}

func (h *GigHandler) Create(c *gin.Context) {
	var req CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	g, err := h.createUC.Execute(c.Request.Context(), ucGig.CreateGigInput{
		Title:       req.Title,
		Description: req.Description,
		ClientID:    req.ClientID,
		Status:      req.Status,
		Rate:        req.Rate,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.Created(c, g)
}

func (h *GigHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid gig id.")
		return
	}

	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	g, err := h.updateUC.Execute(c.Request.Context(), id, patch)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.OK(c, g)
}
