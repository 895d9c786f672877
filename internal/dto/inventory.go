package dto

import (
	"time"

	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInventoryLotRequest is the payload for a stock intake.
// Quantity may be zero; the lot total is computed server-side.
type CreateInventoryLotRequest struct {
	Product    string          `json:"product" binding:"required"`
	Quantity   int64           `json:"quantity" binding:"gte=0"`
	UnitPrice  decimal.Decimal `json:"unitPrice" binding:"required"`
	InvoiceRef string          `json:"invoiceRef"`
}

// InventoryLotResponse is the API shape of a stock intake.
type InventoryLotResponse struct {
	LotID      string    `json:"lotID"`
	Product    string    `json:"product"`
	Quantity   int64     `json:"quantity"`
	UnitPrice  string    `json:"unitPrice"`
	Total      string    `json:"total"`
	InvoiceRef string    `json:"invoiceRef,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// ListInventoryLotsResponse wraps the lot listing.
type ListInventoryLotsResponse struct {
	Lots []InventoryLotResponse `json:"lots"`
}

// ToInventoryLotResponse converts a domain.InventoryLot to its API shape.
func ToInventoryLotResponse(l *domain.InventoryLot) InventoryLotResponse {
	return InventoryLotResponse{
		LotID:      l.LotID,
		Product:    l.Product,
		Quantity:   l.Quantity,
		UnitPrice:  l.UnitPrice.StringFixed(2),
		Total:      l.Total.StringFixed(2),
		InvoiceRef: l.InvoiceRef,
		ReceivedAt: l.ReceivedAt,
	}
}

// ToListInventoryLotsResponse converts a slice of domain.InventoryLot.
func ToListInventoryLotsResponse(lots []domain.InventoryLot) ListInventoryLotsResponse {
	out := make([]InventoryLotResponse, len(lots))
	for i := range lots {
		out[i] = ToInventoryLotResponse(&lots[i])
	}
	return ListInventoryLotsResponse{Lots: out}
}
