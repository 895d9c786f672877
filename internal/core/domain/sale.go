package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records a single sale to a customer. The invoice number is derived
// from the creation timestamp at insert time and never changes.
type Sale struct {
	SaleID        string          `json:"saleID"`
	Customer      string          `json:"customer"`
	Product       string          `json:"product"`
	Amount        decimal.Decimal `json:"amount"`
	InvoiceNumber string          `json:"invoiceNumber"`
	SoldAt        time.Time       `json:"soldAt"`
	CreatedAt     time.Time       `json:"createdAt"`
}
