package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestorpme/gestor_backend/internal/dto"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
)

// SaleHandler exposes the sales endpoints.
type SaleHandler struct {
	saleService portssvc.SaleSvcFacade
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleService portssvc.SaleSvcFacade) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// CreateSale godoc
// @Summary Record a sale
// @Description Records a sale and assigns its invoice number
// @Tags sales
// @Accept json
// @Produce json
// @Param request body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// ListSales godoc
// @Summary List sales
// @Description Returns sales newest first
// @Tags sales
// @Produce json
// @Success 200 {object} dto.ListSalesResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.saleService.ListSales(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListSalesResponse(sales))
}
