package services

import (
	"github.com/gestorpme/gestor_backend/internal/core/domain"
	portsrepo "github.com/gestorpme/gestor_backend/internal/core/ports/repositories"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
	"github.com/gestorpme/gestor_backend/internal/platform/config"
	"github.com/gestorpme/gestor_backend/internal/report"
	"github.com/gestorpme/gestor_backend/pkg/database"
)

// NewServiceContainer wires every service with its repositories and
// platform dependencies.
func NewServiceContainer(
	cfg *config.Config,
	store *database.Mongo,
	repos *portsrepo.RepositoryProvider,
	mailer Mailer,
	renderer *report.Renderer,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:       NewAuthService(repos.UserRepo, cfg, mailer),
		Employee:   NewEmployeeService(repos.EmployeeRepo),
		Ledger:     NewLedgerService(repos.LedgerRepo),
		Payable:    NewBillService(repos.PayableRepo, domain.Payable),
		Receivable: NewBillService(repos.ReceivableRepo, domain.Receivable),
		Sale:       NewSaleService(repos.SaleRepo),
		Inventory:  NewInventoryService(repos.InventoryRepo),
		Dashboard:  NewDashboardService(repos.EmployeeRepo, repos.LedgerRepo, repos.SaleRepo, repos.InventoryRepo),
		Report:     NewReportService(repos.LedgerRepo, repos.PayableRepo, repos.ReceivableRepo, repos.SaleRepo, repos.InventoryRepo, renderer),
		Health:     NewHealthService(store, cfg),
	}
}
