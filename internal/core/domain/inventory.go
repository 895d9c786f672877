package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLot is a single stock intake: a quantity of one product received
// against a source invoice. Total is computed server-side as
// quantity x unit price at insert time.
type InventoryLot struct {
	LotID      string          `json:"lotID"`
	Product    string          `json:"product"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Total      decimal.Decimal `json:"total"`
	InvoiceRef string          `json:"invoiceRef"`
	ReceivedAt time.Time       `json:"receivedAt"`
	CreatedAt  time.Time       `json:"createdAt"`
}
