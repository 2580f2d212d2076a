package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shiftbook/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftbook/attendance-backend-go/internal/domain/auth"
	"github.com/shiftbook/attendance-backend-go/internal/domain/employee"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidSecretKey):
		Unauthorized(w, "Invalid Secret Key")
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarked):
		BadRequest(w, "Attendance already marked for today", nil)
	case errors.Is(err, attendance.ErrNoActiveSession):
		BadRequest(w, "No active login session found or user already logged out", nil)
	case errors.Is(err, attendance.ErrBreakAlreadyOpen):
		Conflict(w, "A break is already open on this record")
	case errors.Is(err, attendance.ErrNoOpenBreak):
		BadRequest(w, "No open break on this record", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Default: infrastructure failure, logged but never leaked
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
