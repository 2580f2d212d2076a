package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shiftbook/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftbook/attendance-backend-go/internal/domain/auth"
	"github.com/shiftbook/attendance-backend-go/internal/domain/employee"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/jwt"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/shiftcal"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/timefmt"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	credentials auth.CredentialRepository
	jwtService  jwt.Service
	calendar    *shiftcal.Calendar
	locks       *keyedMutex

	// now is swapped out in tests
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	credentialRepo auth.CredentialRepository,
	jwtService jwt.Service,
	calendar *shiftcal.Calendar,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		credentials:          credentialRepo,
		jwtService:           jwtService,
		calendar:             calendar,
		locks:                newKeyedMutex(),
		now:                  calendar.Now,
	}
}

// clockString formats a timestamp as an HH:MM:SS wall clock in the shift zone.
func (a *AttendanceServiceImpl) clockString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return a.calendar.In(*t).Format("15:04:05")
}

func (a *AttendanceServiceImpl) resolveEmployee(ctx context.Context, secretKey string) (employee.Employee, error) {
	employeeID, err := a.credentials.Resolve(ctx, auth.DigestSecret(secretKey))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidSecretKey) {
			return employee.Employee{}, auth.ErrInvalidSecretKey
		}
		return employee.Employee{}, fmt.Errorf("failed to resolve secret key: %w", err)
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Credential outlived its employee; treat as unresolved.
			return employee.Employee{}, auth.ErrInvalidSecretKey
		}
		return employee.Employee{}, fmt.Errorf("failed to load employee %s: %w", employeeID, err)
	}
	return emp, nil
}

// Login implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Login(ctx context.Context, req attendance.LoginRequest) (attendance.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.LoginResponse{}, err
	}

	emp, err := a.resolveEmployee(ctx, req.SecretKey)
	if err != nil {
		return attendance.LoginResponse{}, err
	}

	unlock := a.locks.Lock("employee:" + emp.ID)
	defer unlock()

	now := a.now()
	shiftDay := a.calendar.LoginDay(now)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, shiftDay)
	if err != nil {
		return attendance.LoginResponse{}, fmt.Errorf("failed to look up attendance for %s: %w", emp.ID, err)
	}

	switch {
	case record == nil:
		// First login of the shift
		return a.openSession(ctx, emp, shiftDay, now, "Login successful (Time-In recorded)")

	case record.IsLoggedIn:
		// Not an error: the caller is told to log out first, nothing mutates.
		return attendance.LoginResponse{
			Message:         "You are still logged in. Please go to the logout page to log out.",
			AttendanceID:    record.ID,
			EmployeeID:      emp.ID,
			EmployeeName:    emp.Name,
			Designation:     emp.Designation,
			Date:            record.Date.Format("2006-01-02"),
			InTime:          a.clockString(record.InTime),
			IsLoggedIn:      true,
			AlreadyLoggedIn: true,
		}, nil

	case a.calendar.AfterShiftStart(now):
		// Day shift finished earlier; a fresh night shift opens a new record
		// keyed to today's date.
		return a.openSession(ctx, emp, a.calendar.Day(now), now, "New shift login successful (Time-In recorded)")

	default:
		return attendance.LoginResponse{}, attendance.ErrAlreadyMarked
	}
}

func (a *AttendanceServiceImpl) openSession(ctx context.Context, emp employee.Employee, shiftDay time.Time, now time.Time, message string) (attendance.LoginResponse, error) {
	record, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       shiftDay,
		InTime:     &now,
		IsLoggedIn: true,
	})
	if err != nil {
		return attendance.LoginResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	expiry := a.calendar.ShiftExpiry(shiftDay)
	token, err := a.jwtService.GenerateEmployeeToken(emp.ID, emp.Name, emp.Designation, expiry)
	if err != nil {
		return attendance.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return attendance.LoginResponse{
		Message:        message,
		AttendanceID:   record.ID,
		EmployeeID:     emp.ID,
		EmployeeName:   emp.Name,
		Designation:    emp.Designation,
		Date:           shiftDay.Format("2006-01-02"),
		InTime:         a.clockString(record.InTime),
		IsLoggedIn:     true,
		AccessToken:    token,
		ExpirationTime: expiry.Format("15:04:05"),
	}, nil
}

// Logout implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Logout(ctx context.Context, req attendance.LogoutRequest) (attendance.LogoutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.LogoutResponse{}, err
	}

	emp, err := a.resolveEmployee(ctx, req.SecretKey)
	if err != nil {
		return attendance.LogoutResponse{}, err
	}

	unlock := a.locks.Lock("employee:" + emp.ID)
	defer unlock()

	record, err := a.AttendanceRepository.GetOpenSession(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrNoActiveSession) {
			return attendance.LogoutResponse{}, attendance.ErrNoActiveSession
		}
		return attendance.LogoutResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	now := a.now()
	minutes := 0
	if record.InTime != nil {
		// Absolute timestamps keep an overnight session non-negative without
		// any wall-clock normalization.
		minutes = int(now.Sub(*record.InTime).Minutes())
		if minutes < 0 {
			minutes = 0
		}
	}

	record.OutTime = &now
	record.SessionMinutes = &minutes
	record.IsLoggedIn = false

	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.LogoutResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.LogoutResponse{
		Message:        "Logout successful (Time-Out recorded)",
		AttendanceID:   record.ID,
		EmployeeID:     emp.ID,
		Date:           record.Date.Format("2006-01-02"),
		InTime:         a.clockString(record.InTime),
		OutTime:        a.clockString(record.OutTime),
		SessionMinutes: minutes,
		IsLoggedIn:     false,
	}, nil
}

// StartBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) StartBreak(ctx context.Context, attendanceID string, req attendance.StartBreakRequest) (attendance.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BreakResponse{}, err
	}

	unlock := a.locks.Lock("record:" + attendanceID)
	defer unlock()

	if _, err := a.AttendanceRepository.GetByID(ctx, attendanceID); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.BreakResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.BreakResponse{}, fmt.Errorf("failed to load attendance record: %w", err)
	}

	open, err := a.AttendanceRepository.GetOpenBreak(ctx, attendanceID)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to check open break: %w", err)
	}
	if open != nil {
		return attendance.BreakResponse{}, attendance.ErrBreakAlreadyOpen
	}

	now := a.now()
	created, err := a.AttendanceRepository.CreateBreak(ctx, attendance.Break{
		AttendanceID: attendanceID,
		StartAt:      now,
		Type:         req.Type,
		Note:         req.Note,
	})
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to create break: %w", err)
	}

	return a.breakResponse(created, now), nil
}

// EndBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) EndBreak(ctx context.Context, attendanceID string) (attendance.BreakResponse, error) {
	unlock := a.locks.Lock("record:" + attendanceID)
	defer unlock()

	open, err := a.AttendanceRepository.GetOpenBreak(ctx, attendanceID)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to check open break: %w", err)
	}
	if open == nil {
		return attendance.BreakResponse{}, attendance.ErrNoOpenBreak
	}

	now := a.now()
	closed, err := a.AttendanceRepository.CloseBreak(ctx, open.ID, now)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to close break: %w", err)
	}

	return a.breakResponse(closed, now), nil
}

func (a *AttendanceServiceImpl) breakResponse(b attendance.Break, now time.Time) attendance.BreakResponse {
	var endAt *string
	if b.EndAt != nil {
		s := a.clockString(b.EndAt)
		endAt = &s
	}
	return attendance.BreakResponse{
		ID:           b.ID,
		AttendanceID: b.AttendanceID,
		StartAt:      a.clockString(&b.StartAt),
		EndAt:        endAt,
		Type:         b.Type,
		Note:         b.Note,
		Duration:     timefmt.Minutes(b.Minutes(now)),
	}
}
