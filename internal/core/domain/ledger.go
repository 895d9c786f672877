package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes money coming in from money going out.
type EntryKind string

const (
	Credit EntryKind = "credit"
	Debit  EntryKind = "debit"
)

// LedgerEntry is a single credit or debit transaction in the cash-flow
// ledger. Entries are immutable after creation and are never deleted via
// the API; the balance is always recomputed from the full entry set.
type LedgerEntry struct {
	EntryID     string          `json:"entryID"`
	Kind        EntryKind       `json:"kind"`
	Amount      decimal.Decimal `json:"amount"` // always positive; the sign comes from Kind
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
}

// LedgerSummary is the aggregate view of the ledger.
type LedgerSummary struct {
	TotalCredit decimal.Decimal `json:"totalCredit"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	Balance     decimal.Decimal `json:"balance"`
}
