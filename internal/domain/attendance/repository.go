package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records and their
// breaks. Date parameters are shift-day keys (midnight in the shift zone).
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves a record with its breaks
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one
	// shift-day; nil when none exists. Used to gate double login.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// GetOpenSession retrieves the employee's logged-in record, latest
	// shift-day first when storage ever holds more than one.
	GetOpenSession(ctx context.Context, employeeID string) (Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// ListByDate retrieves all records for a shift-day, breaks included
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListByEmployee retrieves all records for an employee, breaks included
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// ListOpenBefore retrieves logged-in records whose shift-day is at or
	// before the given day. Used by the stale-session janitor.
	ListOpenBefore(ctx context.Context, day time.Time) ([]Attendance, error)

	CreateBreak(ctx context.Context, b Break) (Break, error)
	GetOpenBreak(ctx context.Context, attendanceID string) (*Break, error)
	CloseBreak(ctx context.Context, breakID string, endAt time.Time) (Break, error)
}
