package employee

import (
	"github.com/shiftbook/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	ScheduledIn string `json:"scheduled_in"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.ScheduledIn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_in",
			Message: "scheduled_in must be an HH:MM:SS time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Designation *string `json:"designation"`
	ScheduledIn *string `json:"scheduled_in"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be valid",
		})
	}

	if r.ScheduledIn != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.ScheduledIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "scheduled_in",
				Message: "scheduled_in must be an HH:MM:SS time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	ScheduledIn string `json:"scheduled_in"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// RegisteredEmployeeResponse is returned once at creation; the secret key is
// never retrievable afterwards.
type RegisteredEmployeeResponse struct {
	Employee  EmployeeResponse `json:"employee"`
	SecretKey string           `json:"secret_key"`
}
