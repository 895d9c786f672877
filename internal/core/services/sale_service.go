package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/gestorpme/gestor_backend/internal/dto"
	portsrepo "github.com/gestorpme/gestor_backend/internal/core/ports/repositories"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
)

type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepository
	now      func() time.Time
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// NewSaleService creates a new instance of the sale service.
func NewSaleService(saleRepo portsrepo.SaleRepository) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: saleRepo, now: time.Now}
}

func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	soldAt := s.now()
	sale := domain.Sale{
		Customer:      req.Customer,
		Product:       req.Product,
		Amount:        req.Amount,
		InvoiceNumber: invoiceNumber(soldAt),
		SoldAt:        soldAt,
		CreatedAt:     soldAt,
	}

	created, err := s.saleRepo.CreateSale(ctx, sale)
	if err != nil {
		s.LogError(ctx, err, "failed to create sale")
		return nil, err
	}
	s.LogInfo(ctx, "sale created", "saleID", created.SaleID, "invoice", created.InvoiceNumber)
	return created, nil
}

func (s *saleService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.saleRepo.FindSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list sales")
		return nil, err
	}
	return sales, nil
}

// invoiceNumber derives the invoice identifier from the sale timestamp:
// "NF" followed by the Unix time in milliseconds.
func invoiceNumber(at time.Time) string {
	return "NF" + strconv.FormatInt(at.UnixMilli(), 10)
}
