package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
)

// HealthHandler exposes the health probe.
type HealthHandler struct {
	healthService portssvc.HealthSvcFacade
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(healthService portssvc.HealthSvcFacade) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Live godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /health [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "ok"})
}

// Status godoc
// @Summary Health check
// @Description Reports store connectivity and configuration presence. Always 200; the body carries the degradation detail.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthStatus
// @Router /api/health [get]
func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthService.Status(c.Request.Context()))
}
