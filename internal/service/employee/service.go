package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shiftbook/attendance-backend-go/internal/domain/auth"
	"github.com/shiftbook/attendance-backend-go/internal/domain/employee"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/database"
	"github.com/shiftbook/attendance-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	credentials auth.CredentialRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	credentialRepo auth.CredentialRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		credentials:        credentialRepo,
	}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          emp.ID,
		Name:        emp.Name,
		Email:       emp.Email,
		Designation: emp.Designation,
		ScheduledIn: emp.ScheduledIn,
		CreatedAt:   emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Register implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.CreateEmployeeRequest) (employee.RegisteredEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.RegisteredEmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByEmail(ctx, req.Email); err == nil {
		return employee.RegisteredEmployeeResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.RegisteredEmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	secretKey := uuid.NewString()

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			Name:        req.Name,
			Email:       req.Email,
			Designation: req.Designation,
			ScheduledIn: req.ScheduledIn,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		if err := s.credentials.Store(txCtx, created.ID, auth.DigestSecret(secretKey)); err != nil {
			return fmt.Errorf("failed to store credential: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.RegisteredEmployeeResponse{}, err
	}

	return employee.RegisteredEmployeeResponse{
		Employee:  mapEmployeeToResponse(created),
		SecretKey: secretKey,
	}, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.EmployeeRepository.Update(ctx, req.ID, req); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.Get(ctx, req.ID)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.credentials.DeleteByEmployee(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete credential: %w", err)
		}
		return s.EmployeeRepository.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
