package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/gestorpme/gestor_backend/internal/dto"
	portsrepo "github.com/gestorpme/gestor_backend/internal/core/ports/repositories"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
)

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// NewLedgerService creates a new instance of the ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

func (s *ledgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	entry := domain.LedgerEntry{
		Kind:        domain.EntryKind(req.Kind),
		Amount:      req.Amount,
		Description: req.Description,
		Timestamp:   time.Now(),
	}

	created, err := s.ledgerRepo.CreateEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "failed to create ledger entry")
		return nil, err
	}
	s.LogInfo(ctx, "ledger entry created", "entryID", created.EntryID, "kind", created.Kind)
	return created, nil
}

func (s *ledgerService) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.FindEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list ledger entries")
		return nil, err
	}
	return entries, nil
}

func (s *ledgerService) Summary(ctx context.Context) (*domain.LedgerSummary, error) {
	entries, err := s.ledgerRepo.FindEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load entries for summary")
		return nil, err
	}
	summary := AggregateEntries(entries)
	return &summary, nil
}

// AggregateEntries folds a set of ledger entries into credit and debit
// totals and the resulting balance. Only credits add to totalCredit; any
// other kind counts as a debit, so a stored document with an off-enum kind
// can never inflate the balance.
func AggregateEntries(entries []domain.LedgerEntry) domain.LedgerSummary {
	totalCredit := decimal.Zero
	totalDebit := decimal.Zero
	for _, e := range entries {
		switch e.Kind {
		case domain.Credit:
			totalCredit = totalCredit.Add(e.Amount)
		default:
			totalDebit = totalDebit.Add(e.Amount)
		}
	}
	return domain.LedgerSummary{
		TotalCredit: totalCredit,
		TotalDebit:  totalDebit,
		Balance:     totalCredit.Sub(totalDebit),
	}
}
