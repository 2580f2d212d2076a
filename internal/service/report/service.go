package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shiftbook/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftbook/attendance-backend-go/internal/domain/employee"
	"github.com/shiftbook/attendance-backend-go/internal/domain/report"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/shiftcal"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/timefmt"
)

const (
	statusMarked  = "Attendance Marked"
	statusPresent = "Present"
	statusLeave   = "Leave"

	notLoggedIn     = "Not Logged In"
	notLoggedOutYet = "Not Logged Out Yet"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	calendar       *shiftcal.Calendar
	onTimeEarlyMin int
	onTimeLateMin  int

	// now is swapped out in tests
	now func() time.Time
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	calendar *shiftcal.Calendar,
	onTimeEarlyMin int,
	onTimeLateMin int,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		calendar:             calendar,
		onTimeEarlyMin:       onTimeEarlyMin,
		onTimeLateMin:        onTimeLateMin,
		now:                  calendar.Now,
	}
}

func (s *ReportServiceImpl) clockString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return s.calendar.In(*t).Format("15:04:05")
}

// isOnTime compares a login against the employee's scheduled shift start.
// The diff is wall-clock minutes on the shift-day; the window covers early
// arrivals down to onTimeEarlyMin and late ones up to onTimeLateMin.
func (s *ReportServiceImpl) isOnTime(emp employee.Employee, inTime *time.Time) bool {
	if inTime == nil {
		return false
	}
	scheduled := emp.ScheduledMinuteOfDay()
	if scheduled < 0 {
		return false
	}
	local := s.calendar.In(*inTime)
	diff := local.Hour()*60 + local.Minute() - scheduled
	return diff >= s.onTimeEarlyMin && diff <= s.onTimeLateMin
}

// GetDailySnapshot implements report.ReportService.
func (s *ReportServiceImpl) GetDailySnapshot(ctx context.Context, date *time.Time) (report.DailySnapshotResponse, error) {
	var shiftDay time.Time
	if date != nil {
		shiftDay = s.calendar.Day(*date)
	} else {
		shiftDay = s.calendar.ReportingDay(s.now())
	}

	var (
		roster  []employee.Employee
		records []attendance.Attendance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.EmployeeRepository.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.AttendanceRepository.ListByDate(gctx, shiftDay)
		if err != nil {
			return fmt.Errorf("failed to list attendance for %s: %w", shiftDay.Format("2006-01-02"), err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.DailySnapshotResponse{}, err
	}

	total := len(roster)
	byID := make(map[string]employee.Employee, total)
	for _, emp := range roster {
		byID[emp.ID] = emp
	}

	resp := report.DailySnapshotResponse{
		Date:           shiftDay.Format("2006-01-02"),
		TotalEmployees: total,
		LoggedIn:       []report.SnapshotEntry{},
		OnLeave:        []report.SnapshotEntry{},
	}

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		emp, ok := byID[rec.EmployeeID]
		if !ok {
			// Record for an employee since removed from the roster; it still
			// shows up so the day's history stays complete.
			emp = employee.Employee{ID: rec.EmployeeID, Name: "Unknown", Email: "Unknown", Designation: "Unknown"}
		}
		seen[rec.EmployeeID] = true

		entry := report.SnapshotEntry{
			EmployeeID:     emp.ID,
			EmployeeName:   emp.Name,
			EmployeeEmail:  emp.Email,
			Designation:    emp.Designation,
			LoginTime:      notLoggedIn,
			LogoutTime:     notLoggedOutYet,
			IsLoggedIn:     rec.IsLoggedIn,
			Date:           rec.Date.Format("2006-01-02"),
			TotalEmployees: total,
			IsOnTime:       s.isOnTime(emp, rec.InTime),
		}
		if rec.InTime != nil {
			entry.LoginTime = s.clockString(rec.InTime)
		}
		if rec.OutTime != nil {
			entry.LogoutTime = s.clockString(rec.OutTime)
		}

		switch {
		case rec.InTime != nil && rec.OutTime != nil:
			entry.Status = statusMarked
		case rec.InTime != nil:
			entry.Status = statusPresent
		default:
			entry.Status = statusLeave
		}

		if rec.InTime != nil {
			resp.LoggedIn = append(resp.LoggedIn, entry)
		} else {
			resp.OnLeave = append(resp.OnLeave, entry)
		}
	}

	// Roster minus record holders: everyone else is synthesized as leave so
	// the two buckets always partition the full roster.
	for _, emp := range roster {
		if seen[emp.ID] {
			continue
		}
		resp.OnLeave = append(resp.OnLeave, report.SnapshotEntry{
			EmployeeID:     emp.ID,
			EmployeeName:   emp.Name,
			EmployeeEmail:  emp.Email,
			Designation:    emp.Designation,
			LoginTime:      notLoggedIn,
			LogoutTime:     notLoggedOutYet,
			IsLoggedIn:     false,
			Date:           shiftDay.Format("2006-01-02"),
			TotalEmployees: total,
			IsOnTime:       false,
			Status:         statusLeave,
		})
	}

	return resp, nil
}

// GetEmployeeReport implements report.ReportService.
func (s *ReportServiceImpl) GetEmployeeReport(ctx context.Context, employeeID string) (report.EmployeeReportResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return report.EmployeeReportResponse{}, employee.ErrEmployeeNotFound
		}
		return report.EmployeeReportResponse{}, fmt.Errorf("failed to load employee %s: %w", employeeID, err)
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return report.EmployeeReportResponse{}, fmt.Errorf("failed to list attendance for %s: %w", employeeID, err)
	}

	now := s.now()
	resp := report.EmployeeReportResponse{
		EmployeeID:    emp.ID,
		EmployeeName:  emp.Name,
		EmployeeEmail: emp.Email,
		Records:       make([]report.ReportRecord, 0, len(records)),
	}

	totalBreakMinutes := 0
	for _, rec := range records {
		if rec.InTime != nil {
			resp.TotalPresents++
		} else {
			resp.TotalLeaves++
		}

		dailyBreak := 0
		breaks := make([]report.ReportBreak, 0, len(rec.Breaks))
		for _, b := range rec.Breaks {
			mins := b.Minutes(now)
			dailyBreak += mins

			endTime := s.clockString(&now) // provisional end for an open break
			if b.EndAt != nil {
				endTime = s.clockString(b.EndAt)
			}
			breaks = append(breaks, report.ReportBreak{
				StartTime: s.clockString(&b.StartAt),
				EndTime:   endTime,
				Duration:  timefmt.Minutes(mins),
				Type:      b.Type,
				Note:      b.Note,
			})
		}
		totalBreakMinutes += dailyBreak

		record := report.ReportRecord{
			Date:           rec.Date.Format("2006-01-02"),
			LoginTime:      notLoggedIn,
			LogoutTime:     notLoggedOutYet,
			IsLoggedIn:     rec.IsLoggedIn,
			Breaks:         breaks,
			DailyBreakTime: timefmt.Minutes(dailyBreak),
		}
		if rec.InTime != nil {
			record.LoginTime = s.clockString(rec.InTime)
		}
		if rec.OutTime != nil && !rec.IsLoggedIn {
			record.LogoutTime = s.clockString(rec.OutTime)
		}
		resp.Records = append(resp.Records, record)
	}

	resp.TotalBreakTime = timefmt.Minutes(totalBreakMinutes)
	return resp, nil
}
