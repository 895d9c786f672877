package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestorpme/gestor_backend/internal/dto"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
)

// LedgerHandler exposes the cash-flow ledger endpoints.
type LedgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// CreateEntry godoc
// @Summary Record a ledger entry
// @Description Appends a credit or debit to the cash-flow ledger
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body dto.CreateLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/ledger [post]
func (h *LedgerHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// ListEntries godoc
// @Summary List ledger entries
// @Description Returns all entries newest first
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/ledger [get]
func (h *LedgerHandler) ListEntries(c *gin.Context) {
	entries, err := h.ledgerService.ListEntries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListLedgerEntriesResponse(entries))
}

// Summary godoc
// @Summary Ledger summary
// @Description Returns total credits, total debits and the balance
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.LedgerSummaryResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/ledger/summary [get]
func (h *LedgerHandler) Summary(c *gin.Context) {
	summary, err := h.ledgerService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerSummaryResponse(summary))
}
