package services

import (
	"context"
	"time"

	"github.com/gestorpme/gestor_backend/internal/dto"
	portsrepo "github.com/gestorpme/gestor_backend/internal/core/ports/repositories"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
	"github.com/gestorpme/gestor_backend/internal/utils"
)

type dashboardService struct {
	BaseService
	employeeRepo  portsrepo.EmployeeRepository
	ledgerRepo    portsrepo.LedgerRepository
	saleRepo      portsrepo.SaleRepository
	inventoryRepo portsrepo.InventoryRepository
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// NewDashboardService creates a new instance of the dashboard service.
func NewDashboardService(
	employeeRepo portsrepo.EmployeeRepository,
	ledgerRepo portsrepo.LedgerRepository,
	saleRepo portsrepo.SaleRepository,
	inventoryRepo portsrepo.InventoryRepository,
) portssvc.DashboardSvcFacade {
	return &dashboardService{
		employeeRepo:  employeeRepo,
		ledgerRepo:    ledgerRepo,
		saleRepo:      saleRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	employeeCount, err := s.employeeRepo.CountEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to count employees for dashboard")
		return nil, err
	}

	entries, err := s.ledgerRepo.FindEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load ledger for dashboard")
		return nil, err
	}
	summary := AggregateEntries(entries)

	dayStart, dayEnd := utils.LocalDayBounds(time.Now())
	salesToday, err := s.saleRepo.CountSalesBetween(ctx, dayStart, dayEnd)
	if err != nil {
		s.LogError(ctx, err, "failed to count today's sales for dashboard")
		return nil, err
	}

	lotCount, err := s.inventoryRepo.CountLots(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to count inventory lots for dashboard")
		return nil, err
	}

	return &dto.DashboardStats{
		EmployeeCount: employeeCount,
		Balance:       summary.Balance.StringFixed(2),
		SalesToday:    salesToday,
		InventoryLots: lotCount,
	}, nil
}
