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

type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepository
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// NewInventoryService creates a new instance of the inventory service.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepository) portssvc.InventorySvcFacade {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

func (s *inventoryService) CreateLot(ctx context.Context, req dto.CreateInventoryLotRequest) (*domain.InventoryLot, error) {
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", apperrors.ErrValidation)
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unitPrice cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	lot := domain.InventoryLot{
		Product:    req.Product,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		Total:      req.UnitPrice.Mul(decimal.NewFromInt(req.Quantity)),
		InvoiceRef: req.InvoiceRef,
		ReceivedAt: now,
		CreatedAt:  now,
	}

	created, err := s.inventoryRepo.CreateLot(ctx, lot)
	if err != nil {
		s.LogError(ctx, err, "failed to create inventory lot")
		return nil, err
	}
	s.LogInfo(ctx, "inventory lot created", "lotID", created.LotID, "product", created.Product)
	return created, nil
}

func (s *inventoryService) ListLots(ctx context.Context) ([]domain.InventoryLot, error) {
	lots, err := s.inventoryRepo.FindLots(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list inventory lots")
		return nil, err
	}
	return lots, nil
}
