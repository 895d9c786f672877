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

const hiredAtLayout = "2006-01-02"

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepository
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// NewEmployeeService creates a new instance of the employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepository) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if req.Salary.IsNegative() {
		return nil, fmt.Errorf("%w: salary cannot be negative", apperrors.ErrValidation)
	}
	hiredAt, err := parseHiredAt(req.HiredAt)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	employee := domain.Employee{
		Name:       req.Name,
		TaxID:      req.TaxID,
		IDCard:     req.IDCard,
		Parentage:  req.Parentage,
		PostalCode: req.PostalCode,
		Street:     req.Street,
		Number:     req.Number,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		Phone:      req.Phone,
		Email:      req.Email,
		Position:   req.Position,
		Salary:     req.Salary,
		HiredAt:    hiredAt,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.employeeRepo.CreateEmployee(ctx, employee)
	if err != nil {
		s.LogError(ctx, err, "failed to create employee")
		return nil, err
	}
	s.LogInfo(ctx, "employee created", "employeeID", created.EmployeeID)
	return created, nil
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list employees")
		return nil, err
	}
	return employees, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "failed to get employee", "employeeID", employeeID)
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if req.Salary.IsNegative() {
		return nil, fmt.Errorf("%w: salary cannot be negative", apperrors.ErrValidation)
	}

	existing, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "failed to load employee for update", "employeeID", employeeID)
		return nil, err
	}

	hiredAt := existing.HiredAt
	if req.HiredAt != "" {
		hiredAt, err = parseHiredAt(req.HiredAt)
		if err != nil {
			return nil, err
		}
	}

	employee := domain.Employee{
		Name:       req.Name,
		TaxID:      req.TaxID,
		IDCard:     req.IDCard,
		Parentage:  req.Parentage,
		PostalCode: req.PostalCode,
		Street:     req.Street,
		Number:     req.Number,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		Phone:      req.Phone,
		Email:      req.Email,
		Position:   req.Position,
		Salary:     req.Salary,
		HiredAt:    hiredAt,
		AuditFields: domain.AuditFields{
			CreatedAt: existing.CreatedAt,
			UpdatedAt: time.Now(),
		},
	}

	if err := s.employeeRepo.UpdateEmployee(ctx, employeeID, employee); err != nil {
		s.LogError(ctx, err, "failed to update employee", "employeeID", employeeID)
		return nil, err
	}

	updated, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "failed to reload employee after update", "employeeID", employeeID)
		return nil, err
	}
	s.LogInfo(ctx, "employee updated", "employeeID", employeeID)
	return updated, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "failed to delete employee", "employeeID", employeeID)
		return err
	}
	s.LogInfo(ctx, "employee deleted", "employeeID", employeeID)
	return nil
}

func parseHiredAt(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(hiredAtLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: hiredAt must use the YYYY-MM-DD format", apperrors.ErrValidation)
	}
	return t, nil
}
