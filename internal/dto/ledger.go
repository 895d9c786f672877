package dto

import (
	"time"

	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest is the payload for a deposit or withdrawal.
type CreateLedgerEntryRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=credit debit"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

// LedgerEntryResponse is the API shape of a ledger entry.
type LedgerEntryResponse struct {
	EntryID     string    `json:"entryID"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// ListLedgerEntriesResponse wraps the entry listing.
type ListLedgerEntriesResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
}

// LedgerSummaryResponse is the aggregate cash-flow view.
// Amounts are fixed two-decimal strings.
type LedgerSummaryResponse struct {
	TotalCredit string `json:"totalCredit"`
	TotalDebit  string `json:"totalDebit"`
	Balance     string `json:"balance"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its API shape.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:     e.EntryID,
		Kind:        string(e.Kind),
		Amount:      e.Amount.StringFixed(2),
		Description: e.Description,
		Timestamp:   e.Timestamp,
	}
}

// ToListLedgerEntriesResponse converts a slice of domain.LedgerEntry.
func ToListLedgerEntriesResponse(entries []domain.LedgerEntry) ListLedgerEntriesResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToLedgerEntryResponse(&entries[i])
	}
	return ListLedgerEntriesResponse{Entries: out}
}

// ToLedgerSummaryResponse converts a domain.LedgerSummary to its API shape.
func ToLedgerSummaryResponse(s *domain.LedgerSummary) LedgerSummaryResponse {
	return LedgerSummaryResponse{
		TotalCredit: s.TotalCredit.StringFixed(2),
		TotalDebit:  s.TotalDebit.StringFixed(2),
		Balance:     s.Balance.StringFixed(2),
	}
}
