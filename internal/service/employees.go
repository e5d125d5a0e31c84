package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/munchbox/munchbox/internal/models"
	"github.com/munchbox/munchbox/internal/storage"
)

// EmployeeService owns the employee collection.
type EmployeeService struct {
	store storage.Store
	now   func() time.Time
}

// NewEmployeeService creates an EmployeeService.
func NewEmployeeService(store storage.Store) *EmployeeService {
	return &EmployeeService{store: store, now: time.Now}
}

// Employees returns the full staff list.
func (s *EmployeeService) Employees(ctx context.Context) ([]models.Employee, error) {
	return s.store.Employees(ctx)
}

// Employee fetches one record by id.
func (s *EmployeeService) Employee(ctx context.Context, id string) (models.Employee, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to load employees: %w", err)
	}
	for _, emp := range employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return models.Employee{}, fmt.Errorf("employee %s: %w", id, ErrNotFound)
}

// AddEmployee appends a staff record, generating an EMP id when absent.
func (s *EmployeeService) AddEmployee(ctx context.Context, emp models.Employee) (models.Employee, error) {
	if emp.Name == "" {
		return models.Employee{}, ErrMissingFields
	}
	if emp.ID == "" {
		emp.ID = fmt.Sprintf("EMP-%d", s.now().UnixMilli())
	}

	employees, err := s.store.Employees(ctx)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to load employees: %w", err)
	}
	employees = append(employees, emp)
	if err := s.store.SaveEmployees(ctx, employees); err != nil {
		return models.Employee{}, fmt.Errorf("failed to save employees: %w", err)
	}

	slog.Info("Employee added", "employee_id", emp.ID, "role", emp.Role)
	return emp, nil
}

// UpdateEmployee merges a patch into the identified record.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id string, patch models.EmployeePatch) (models.Employee, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to load employees: %w", err)
	}

	for i := range employees {
		if employees[i].ID != id {
			continue
		}
		patch.Apply(&employees[i])
		if err := s.store.SaveEmployees(ctx, employees); err != nil {
			return models.Employee{}, fmt.Errorf("failed to save employees: %w", err)
		}
		return employees[i], nil
	}
	return models.Employee{}, fmt.Errorf("employee %s: %w", id, ErrNotFound)
}

// DeleteEmployee removes the identified record. Removing an id that
// is not present still succeeds; the back-office has always treated
// employee deletion as idempotent.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id string) error {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	filtered := employees[:0:0]
	for _, emp := range employees {
		if emp.ID != id {
			filtered = append(filtered, emp)
		}
	}
	if err := s.store.SaveEmployees(ctx, filtered); err != nil {
		return fmt.Errorf("failed to save employees: %w", err)
	}
	return nil
}
