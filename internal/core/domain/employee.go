package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee represents a registered employee.
// TaxID and Email are unique across the registry; uniqueness is enforced by
// the record store.
type Employee struct {
	EmployeeID string          `json:"employeeID"`
	Name       string          `json:"name"`
	TaxID      string          `json:"taxID"`  // CPF
	IDCard     string          `json:"idCard"` // RG
	Parentage  string          `json:"parentage"`
	PostalCode string          `json:"postalCode"` // CEP
	Street     string          `json:"street"`
	Number     string          `json:"number"`
	District   string          `json:"district"`
	City       string          `json:"city"`
	State      string          `json:"state"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	Position   string          `json:"position"`
	Salary     decimal.Decimal `json:"salary"`
	HiredAt    time.Time       `json:"hiredAt"`
	AuditFields
}
