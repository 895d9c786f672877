package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
)

// DashboardHandler exposes the landing-page statistics endpoint.
type DashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService portssvc.DashboardSvcFacade) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Returns employee count, ledger balance, today's sales and lot count
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStats
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
