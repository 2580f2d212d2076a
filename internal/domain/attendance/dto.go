package attendance

import (
	"github.com/shiftbook/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type LoginRequest struct {
	SecretKey string `json:"secret_key"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SecretKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "secret_key",
			Message: "secret_key is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LogoutRequest struct {
	SecretKey string `json:"secret_key"`
}

func (r *LogoutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SecretKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "secret_key",
			Message: "secret_key is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StartBreakRequest struct {
	Type string `json:"type"`
	Note string `json:"note"`
}

func (r *StartBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "break type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	Message         string `json:"message"`
	AttendanceID    string `json:"attendance_id,omitempty"`
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	Designation     string `json:"designation"`
	Date            string `json:"date"`
	InTime          string `json:"in_time"`
	IsLoggedIn      bool   `json:"is_logged_in"`
	AlreadyLoggedIn bool   `json:"already_logged_in"`
	AccessToken     string `json:"access_token,omitempty"`
	ExpirationTime  string `json:"expiration_time,omitempty"`
}

type LogoutResponse struct {
	Message        string `json:"message"`
	AttendanceID   string `json:"attendance_id"`
	EmployeeID     string `json:"employee_id"`
	Date           string `json:"date"`
	InTime         string `json:"in_time"`
	OutTime        string `json:"out_time"`
	SessionMinutes int    `json:"session_minutes"`
	IsLoggedIn     bool   `json:"is_logged_in"`
}

type BreakResponse struct {
	ID           string  `json:"id"`
	AttendanceID string  `json:"attendance_id"`
	StartAt      string  `json:"start_at"`
	EndAt        *string `json:"end_at"`
	Type         string  `json:"type"`
	Note         string  `json:"note"`
	Duration     string  `json:"duration"`
}
