package attendance

import (
	"math"
	"time"
)

// Attendance is one employee's login/logout/break data for one shift-day.
// At most one record exists per (employee, shift-day); at most one record per
// employee may be logged in at a time. Both invariants are enforced by the
// attendance service, not by storage.
type Attendance struct {
	ID             string
	EmployeeID     string
	Date           time.Time // shift-day key, midnight in the shift timezone
	InTime         *time.Time
	OutTime        *time.Time
	IsLoggedIn     bool
	SessionMinutes *int
	Breaks         []Break
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined from the roster for responses
	EmployeeName *string
}

// Break is a rest interval inside an attendance record. EndAt is nil while
// the break is still open; at most one break per record may be open.
type Break struct {
	ID           string
	AttendanceID string
	StartAt      time.Time
	EndAt        *time.Time
	Type         string
	Note         string
	CreatedAt    time.Time
}

// Minutes returns the break duration rounded to whole minutes. An open break
// uses now as a provisional end without being closed.
func (b Break) Minutes(now time.Time) int {
	end := now
	if b.EndAt != nil {
		end = *b.EndAt
	}
	return int(math.Round(end.Sub(b.StartAt).Minutes()))
}

// TotalBreakMinutes sums all break durations on the record, including the
// provisional duration of a still-open break.
func (a Attendance) TotalBreakMinutes(now time.Time) int {
	total := 0
	for _, b := range a.Breaks {
		total += b.Minutes(now)
	}
	return total
}

// OpenBreak returns the record's open break, if any.
func (a Attendance) OpenBreak() *Break {
	for i := range a.Breaks {
		if a.Breaks[i].EndAt == nil {
			return &a.Breaks[i]
		}
	}
	return nil
}
