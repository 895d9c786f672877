package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillKind tells a payable apart from a receivable. The two share a shape
// and live in separate collections.
type BillKind string

const (
	Payable    BillKind = "payable"
	Receivable BillKind = "receivable"
)

// BillStatus is the settlement state of a bill. Bills are created pending;
// no endpoint transitions them, but stored documents may carry either value.
type BillStatus string

const (
	StatusPending BillStatus = "pending"
	StatusSettled BillStatus = "settled"
)

// Bill is an obligation to pay (payable) or to be paid (receivable) by a
// due date.
type Bill struct {
	BillID      string          `json:"billID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
	Status      BillStatus      `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}
