package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/gestorpme/gestor_backend/internal/dto"
	portsrepo "github.com/gestorpme/gestor_backend/internal/core/ports/repositories"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
)

const dueDateLayout = "2006-01-02"

// billService serves one bill collection; the same implementation is
// instantiated once for payables and once for receivables.
type billService struct {
	BaseService
	billRepo portsrepo.BillRepository
	kind     domain.BillKind
}

var _ portssvc.BillSvcFacade = (*billService)(nil)

// NewBillService creates a bill service bound to one collection.
func NewBillService(billRepo portsrepo.BillRepository, kind domain.BillKind) portssvc.BillSvcFacade {
	return &billService{billRepo: billRepo, kind: kind}
}

func (s *billService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	dueDate, err := time.ParseInLocation(dueDateLayout, req.DueDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: dueDate must use the YYYY-MM-DD format", apperrors.ErrValidation)
	}

	bill := domain.Bill{
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
		Status:      domain.StatusPending,
		CreatedAt:   time.Now(),
	}

	created, err := s.billRepo.CreateBill(ctx, bill)
	if err != nil {
		s.LogError(ctx, err, "failed to create bill", "kind", s.kind)
		return nil, err
	}
	s.LogInfo(ctx, "bill created", "billID", created.BillID, "kind", s.kind)
	return created, nil
}

func (s *billService) ListBills(ctx context.Context) ([]domain.Bill, error) {
	bills, err := s.billRepo.FindBills(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list bills", "kind", s.kind)
		return nil, err
	}
	return bills, nil
}
