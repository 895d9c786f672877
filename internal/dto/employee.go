package dto

import (
	"time"

	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest is the payload for registering an employee.
// HiredAt is optional and defaults to the registration time.
type CreateEmployeeRequest struct {
	Name       string          `json:"name" binding:"required"`
	TaxID      string          `json:"taxID" binding:"required,taxid"`
	IDCard     string          `json:"idCard"`
	Parentage  string          `json:"parentage"`
	PostalCode string          `json:"postalCode"`
	Street     string          `json:"street"`
	Number     string          `json:"number"`
	District   string          `json:"district"`
	City       string          `json:"city"`
	State      string          `json:"state"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email" binding:"required,email"`
	Position   string          `json:"position"`
	Salary     decimal.Decimal `json:"salary" binding:"required"`
	HiredAt    string          `json:"hiredAt" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeRequest is a full replacement of the mutable employee fields.
type UpdateEmployeeRequest struct {
	Name       string          `json:"name" binding:"required"`
	TaxID      string          `json:"taxID" binding:"required,taxid"`
	IDCard     string          `json:"idCard"`
	Parentage  string          `json:"parentage"`
	PostalCode string          `json:"postalCode"`
	Street     string          `json:"street"`
	Number     string          `json:"number"`
	District   string          `json:"district"`
	City       string          `json:"city"`
	State      string          `json:"state"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email" binding:"required,email"`
	Position   string          `json:"position"`
	Salary     decimal.Decimal `json:"salary" binding:"required"`
	HiredAt    string          `json:"hiredAt" binding:"omitempty,datetime=2006-01-02"`
}

// EmployeeResponse is the API shape of an employee.
type EmployeeResponse struct {
	EmployeeID string    `json:"employeeID"`
	Name       string    `json:"name"`
	TaxID      string    `json:"taxID"`
	IDCard     string    `json:"idCard,omitempty"`
	Parentage  string    `json:"parentage,omitempty"`
	PostalCode string    `json:"postalCode,omitempty"`
	Street     string    `json:"street,omitempty"`
	Number     string    `json:"number,omitempty"`
	District   string    `json:"district,omitempty"`
	City       string    `json:"city,omitempty"`
	State      string    `json:"state,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email"`
	Position   string    `json:"position,omitempty"`
	Salary     string    `json:"salary"`
	HiredAt    time.Time `json:"hiredAt"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ListEmployeesResponse wraps the employee listing.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain.Employee to its API shape.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		TaxID:      e.TaxID,
		IDCard:     e.IDCard,
		Parentage:  e.Parentage,
		PostalCode: e.PostalCode,
		Street:     e.Street,
		Number:     e.Number,
		District:   e.District,
		City:       e.City,
		State:      e.State,
		Phone:      e.Phone,
		Email:      e.Email,
		Position:   e.Position,
		Salary:     e.Salary.StringFixed(2),
		HiredAt:    e.HiredAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// ToListEmployeesResponse converts a slice of domain.Employee.
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	out := make([]EmployeeResponse, len(employees))
	for i := range employees {
		out[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{Employees: out}
}
