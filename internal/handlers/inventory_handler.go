package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestorpme/gestor_backend/internal/dto"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
)

// InventoryHandler exposes the stock intake endpoints.
type InventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryService portssvc.InventorySvcFacade) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// CreateLot godoc
// @Summary Record a stock intake
// @Description Records a lot; the total is computed server-side
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateInventoryLotRequest true "Lot details"
// @Success 201 {object} dto.InventoryLotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/inventory [post]
func (h *InventoryHandler) CreateLot(c *gin.Context) {
	var req dto.CreateInventoryLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	lot, err := h.inventoryService.CreateLot(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToInventoryLotResponse(lot))
}

// ListLots godoc
// @Summary List stock intakes
// @Description Returns lots newest first
// @Tags inventory
// @Produce json
// @Success 200 {object} dto.ListInventoryLotsResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/inventory [get]
func (h *InventoryHandler) ListLots(c *gin.Context) {
	lots, err := h.inventoryService.ListLots(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListInventoryLotsResponse(lots))
}
