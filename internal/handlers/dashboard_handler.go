package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/freelancedesk/freelance-tracker/internal/httperr"
	"github.com/freelancedesk/freelance-tracker/internal/httpresp"
	ucDashboard "github.com/freelancedesk/freelance-tracker/internal/usecase/dashboard"
)

type DashboardHandler struct {
	summaryUC *ucDashboard.Summary
}

func NewDashboardHandler(summaryUC *ucDashboard.Summary) *DashboardHandler {
	return &DashboardHandler{summaryUC: summaryUC}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.summaryUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_build_summary", "Could not build summary.")
		return
	}
	httpresp.OK(c, summary)
}
