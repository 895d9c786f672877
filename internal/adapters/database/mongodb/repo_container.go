package mongodb

import (
	portsrepo "github.com/gestorpme/gestor_backend/internal/core/ports/repositories"
	"github.com/gestorpme/gestor_backend/pkg/database"
)

// NewRepositoryProvider wires every record store over the shared handle.
func NewRepositoryProvider(store *database.Mongo) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:       newMongoUserRepository(store),
		EmployeeRepo:   newMongoEmployeeRepository(store),
		LedgerRepo:     newMongoLedgerRepository(store),
		PayableRepo:    newMongoBillRepository(store, collPayables),
		ReceivableRepo: newMongoBillRepository(store, collReceivables),
		SaleRepo:       newMongoSaleRepository(store),
		InventoryRepo:  newMongoInventoryRepository(store),
	}
}
