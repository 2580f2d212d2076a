package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftbook/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/shiftcal"
)

// AttendanceJobs closes sessions that were never logged out. A session is
// stale once its shift window has been over for longer than the grace
// duration; it is closed at the window end so its duration stays meaningful.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	calendar       *shiftcal.Calendar
	grace          time.Duration
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, calendar *shiftcal.Calendar, grace time.Duration) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		calendar:       calendar,
		grace:          grace,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_stale_sessions", 1*time.Hour, j.CloseStaleSessions)
}

func (j *AttendanceJobs) CloseStaleSessions(ctx context.Context) error {
	now := j.calendar.Now()

	// Any record whose shift-day predates the current reporting day has a
	// window that already ended; the grace keeps the current day's tail out.
	day := j.calendar.ReportingDay(now.Add(-j.grace)).AddDate(0, 0, -1)

	sessions, err := j.attendanceRepo.ListOpenBefore(ctx, day)
	if err != nil {
		return fmt.Errorf("failed to list stale sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil
	}

	closed := 0
	for _, session := range sessions {
		_, windowEnd := j.calendar.Window(session.Date)

		session.OutTime = &windowEnd
		session.IsLoggedIn = false
		if session.InTime != nil {
			mins := int(windowEnd.Sub(*session.InTime).Minutes())
			if mins < 0 {
				mins = 0
			}
			session.SessionMinutes = &mins
		}

		if err := j.attendanceRepo.Update(ctx, session); err != nil {
			slog.Error("Cron: failed to close stale session", "attendance_id", session.ID, "error", err)
			continue
		}
		closed++
	}

	slog.Info("Cron: closed stale sessions", "found", len(sessions), "closed", closed)
	return nil
}
