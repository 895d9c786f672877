package services

import (
	"context"
	"io"

	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/gestorpme/gestor_backend/internal/dto"
	"github.com/gestorpme/gestor_backend/internal/report"
)

// AuthSvcFacade handles user registration, sign-in and password reset.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)
	ResetPassword(ctx context.Context, email string) error
}

// EmployeeSvcFacade manages the employee registry.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// LedgerSvcFacade records cash-flow entries and aggregates them.
type LedgerSvcFacade interface {
	CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context) ([]domain.LedgerEntry, error)
	Summary(ctx context.Context) (*domain.LedgerSummary, error)
}

// BillSvcFacade manages one bill collection (payables or receivables).
type BillSvcFacade interface {
	CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error)
	ListBills(ctx context.Context) ([]domain.Bill, error)
}

// SaleSvcFacade records sales and lists them newest first.
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

// InventorySvcFacade records stock intakes.
type InventorySvcFacade interface {
	CreateLot(ctx context.Context, req dto.CreateInventoryLotRequest) (*domain.InventoryLot, error)
	ListLots(ctx context.Context) ([]domain.InventoryLot, error)
}

// DashboardSvcFacade builds the landing-page summary.
type DashboardSvcFacade interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

// ReportSvcFacade builds report documents from the record stores and
// renders them. Building and rendering are split so handlers can fail with
// a clean status before any byte is streamed.
type ReportSvcFacade interface {
	LedgerReport(ctx context.Context) (*report.Document, error)
	PayablesReport(ctx context.Context) (*report.Document, error)
	ReceivablesReport(ctx context.Context) (*report.Document, error)
	SalesReport(ctx context.Context) (*report.Document, error)
	InventoryReport(ctx context.Context) (*report.Document, error)
	Render(w io.Writer, doc *report.Document) error
}

// HealthSvcFacade reports store connectivity and configuration presence.
type HealthSvcFacade interface {
	Status(ctx context.Context) dto.HealthStatus
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth       AuthSvcFacade
	Employee   EmployeeSvcFacade
	Ledger     LedgerSvcFacade
	Payable    BillSvcFacade
	Receivable BillSvcFacade
	Sale       SaleSvcFacade
	Inventory  InventorySvcFacade
	Dashboard  DashboardSvcFacade
	Report     ReportSvcFacade
	Health     HealthSvcFacade
}
