package employee

import "context"

// EmployeeService defines roster management operations (admin only).
type EmployeeService interface {
	// Register creates an employee and issues their attendance secret key.
	Register(ctx context.Context, req CreateEmployeeRequest) (RegisteredEmployeeResponse, error)

	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
