package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/freelancedesk/freelance-tracker/internal/cache"
	domain "github.com/freelancedesk/freelance-tracker/internal/domain/client"
	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/httpresp"
	ucClient "github.com/freelancedesk/freelance-tracker/internal/usecase/client"
)

type ClientHandler struct {
	repo     domain.Repository
	createUC *ucClient.CreateClient
	updateUC *ucClient.UpdateClient
	cache    *cache.SummaryCache
}

func NewClientHandler(
	repo domain.Repository,
	createUC *ucClient.CreateClient,
	updateUC *ucClient.UpdateClient,
	summaryCache *cache.SummaryCache,
) *ClientHandler {
	return &ClientHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		cache:    summaryCache,
	}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid client id.")
		return
	}

	cl, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}
	httpresp.OK(c, cl)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	cl, err := h.createUC.Execute(c.Request.Context(), ucClient.CreateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Phone:   req.Phone,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.Created(c, cl)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid client id.")
		return
	}

	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	cl, err := h.updateUC.Execute(c.Request.Context(), id, patch)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.OK(c, cl)
}
