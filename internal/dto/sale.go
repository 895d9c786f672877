package dto

import (
	"time"

	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest is the payload for recording a sale.
type CreateSaleRequest struct {
	Customer string          `json:"customer" binding:"required"`
	Product  string          `json:"product" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

// SaleResponse is the API shape of a sale.
type SaleResponse struct {
	SaleID        string    `json:"saleID"`
	Customer      string    `json:"customer"`
	Product       string    `json:"product"`
	Amount        string    `json:"amount"`
	InvoiceNumber string    `json:"invoiceNumber"`
	SoldAt        time.Time `json:"soldAt"`
}

// ListSalesResponse wraps the sale listing.
type ListSalesResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ToSaleResponse converts a domain.Sale to its API shape.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:        s.SaleID,
		Customer:      s.Customer,
		Product:       s.Product,
		Amount:        s.Amount.StringFixed(2),
		InvoiceNumber: s.InvoiceNumber,
		SoldAt:        s.SoldAt,
	}
}

// ToListSalesResponse converts a slice of domain.Sale.
func ToListSalesResponse(sales []domain.Sale) ListSalesResponse {
	out := make([]SaleResponse, len(sales))
	for i := range sales {
		out[i] = ToSaleResponse(&sales[i])
	}
	return ListSalesResponse{Sales: out}
}
