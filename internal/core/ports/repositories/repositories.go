package repositories

import (
	"context"
	"time"

	"github.com/gestorpme/gestor_backend/internal/core/domain"
)

// UserRepository is the record store contract for back-office users.
type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error
}

// EmployeeRepository is the record store contract for the employee registry.
// FindEmployees returns the full registry sorted by name.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
	FindEmployees(ctx context.Context) ([]domain.Employee, error)
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, employeeID string) error
	CountEmployees(ctx context.Context) (int64, error)
}

// LedgerRepository is the record store contract for cash-flow entries.
// Entries are append-only; FindEntries returns them newest first.
type LedgerRepository interface {
	CreateEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
	FindEntries(ctx context.Context) ([]domain.LedgerEntry, error)
}

// BillRepository is the record store contract for payables or receivables;
// one instance is bound per collection. FindBills returns bills ordered by
// due date ascending.
type BillRepository interface {
	CreateBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error)
	FindBills(ctx context.Context) ([]domain.Bill, error)
}

// SaleRepository is the record store contract for sales, newest first.
type SaleRepository interface {
	CreateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error)
	FindSales(ctx context.Context) ([]domain.Sale, error)
	CountSalesBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// InventoryRepository is the record store contract for stock intakes,
// newest first.
type InventoryRepository interface {
	CreateLot(ctx context.Context, lot domain.InventoryLot) (*domain.InventoryLot, error)
	FindLots(ctx context.Context) ([]domain.InventoryLot, error)
	CountLots(ctx context.Context) (int64, error)
}

// RepositoryProvider bundles all repositories for service construction.
type RepositoryProvider struct {
	UserRepo       UserRepository
	EmployeeRepo   EmployeeRepository
	LedgerRepo     LedgerRepository
	PayableRepo    BillRepository
	ReceivableRepo BillRepository
	SaleRepo       SaleRepository
	InventoryRepo  InventoryRepository
}
