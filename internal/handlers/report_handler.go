package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestorpme/gestor_backend/internal/middleware"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
	"github.com/gestorpme/gestor_backend/internal/report"
)

// ReportHandler streams the PDF reports. Each report is fully built from
// the record stores before the first byte is written, so store failures
// still produce a clean JSON error status.
type ReportHandler struct {
	reportService portssvc.ReportSvcFacade
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService portssvc.ReportSvcFacade) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// LedgerReport godoc
// @Summary Cash-flow report PDF
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/reports/ledger [get]
func (h *ReportHandler) LedgerReport(c *gin.Context) {
	h.serve(c, h.reportService.LedgerReport)
}

// PayablesReport godoc
// @Summary Accounts payable report PDF
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/reports/payables [get]
func (h *ReportHandler) PayablesReport(c *gin.Context) {
	h.serve(c, h.reportService.PayablesReport)
}

// ReceivablesReport godoc
// @Summary Accounts receivable report PDF
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/reports/receivables [get]
func (h *ReportHandler) ReceivablesReport(c *gin.Context) {
	h.serve(c, h.reportService.ReceivablesReport)
}

// SalesReport godoc
// @Summary Sales report PDF
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/reports/sales [get]
func (h *ReportHandler) SalesReport(c *gin.Context) {
	h.serve(c, h.reportService.SalesReport)
}

// InventoryReport godoc
// @Summary Inventory report PDF
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/reports/inventory [get]
func (h *ReportHandler) InventoryReport(c *gin.Context) {
	h.serve(c, h.reportService.InventoryReport)
}

func (h *ReportHandler) serve(c *gin.Context, build func(context.Context) (*report.Document, error)) {
	doc, err := build(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	filename := doc.Filename(time.Now())
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("report generated",
			"file", filename, "user_id", userID)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if err := h.reportService.Render(c.Writer, doc); err != nil {
		// Headers are already out; all we can do is log and drop the stream.
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("failed to render report", "error", err.Error())
		c.Abort()
	}
}
