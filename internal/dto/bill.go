package dto

import (
	"time"

	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBillRequest is the payload for a payable or receivable.
type CreateBillRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	DueDate     string          `json:"dueDate" binding:"required,datetime=2006-01-02"`
}

// BillResponse is the API shape of a payable or receivable.
type BillResponse struct {
	BillID      string    `json:"billID"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	DueDate     time.Time `json:"dueDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListBillsResponse wraps the bill listing.
type ListBillsResponse struct {
	Bills []BillResponse `json:"bills"`
}

// ToBillResponse converts a domain.Bill to its API shape.
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:      b.BillID,
		Description: b.Description,
		Amount:      b.Amount.StringFixed(2),
		DueDate:     b.DueDate,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}
}

// ToListBillsResponse converts a slice of domain.Bill.
func ToListBillsResponse(bills []domain.Bill) ListBillsResponse {
	out := make([]BillResponse, len(bills))
	for i := range bills {
		out[i] = ToBillResponse(&bills[i])
	}
	return ListBillsResponse{Bills: out}
}
