package employee

import (
	"time"
)

type Employee struct {
	ID          string
	Name        string
	Email       string
	Designation string
	// ScheduledIn is the employee's scheduled shift-start as an "HH:MM:SS"
	// wall-clock string in the shift timezone.
	ScheduledIn string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ScheduledMinuteOfDay converts ScheduledIn to minutes since midnight.
// ScheduledIn is validated at write time; a malformed stored value reports
// -1 so the record is never classified as on time.
func (e Employee) ScheduledMinuteOfDay() int {
	t, err := time.Parse("15:04:05", e.ScheduledIn)
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}
