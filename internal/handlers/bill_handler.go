package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestorpme/gestor_backend/internal/dto"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
)

// BillHandler exposes one bill collection (payables or receivables); the
// route group it is mounted on decides which.
type BillHandler struct {
	billService portssvc.BillSvcFacade
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService portssvc.BillSvcFacade) *BillHandler {
	return &BillHandler{billService: billService}
}

// CreateBill godoc
// @Summary Record a bill
// @Description Creates a pending payable or receivable
// @Tags bills
// @Accept json
// @Produce json
// @Param request body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/payables [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// ListBills godoc
// @Summary List bills
// @Description Returns bills ordered by due date ascending
// @Tags bills
// @Produce json
// @Success 200 {object} dto.ListBillsResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/payables [get]
func (h *BillHandler) ListBills(c *gin.Context) {
	bills, err := h.billService.ListBills(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListBillsResponse(bills))
}
