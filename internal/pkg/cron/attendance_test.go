package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbook/attendance-backend-go/internal/config"
	"github.com/shiftbook/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/shiftcal"
)

// Only the two janitor methods are real; anything else would panic via the
// nil embed.
type stubJanitorRepo struct {
	attendance.AttendanceRepository
	open    []attendance.Attendance
	updated []attendance.Attendance
}

func (s *stubJanitorRepo) ListOpenBefore(ctx context.Context, day time.Time) ([]attendance.Attendance, error) {
	return s.open, nil
}

func (s *stubJanitorRepo) Update(ctx context.Context, rec attendance.Attendance) error {
	s.updated = append(s.updated, rec)
	return nil
}

func TestCloseStaleSessions(t *testing.T) {
	calendar, err := shiftcal.New(config.ShiftConfig{
		Timezone:        "Asia/Karachi",
		StartHour:       17,
		EndHour:         8,
		LoginCutoffHour: 9,
		ExpiryHours:     16,
	})
	require.NoError(t, err)
	loc := calendar.Location()

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, loc)
	in := time.Date(2024, 3, 10, 18, 0, 0, 0, loc)
	repo := &stubJanitorRepo{open: []attendance.Attendance{
		{ID: "att-1", EmployeeID: "emp-1", Date: day, InTime: &in, IsLoggedIn: true},
	}}

	jobs := NewAttendanceJobs(repo, calendar, time.Hour)
	require.NoError(t, jobs.CloseStaleSessions(context.Background()))

	require.Len(t, repo.updated, 1)
	closed := repo.updated[0]
	assert.False(t, closed.IsLoggedIn)
	require.NotNil(t, closed.OutTime)
	// Closed at the window end: 08:00 the morning after the shift-day.
	assert.True(t, closed.OutTime.Equal(time.Date(2024, 3, 11, 8, 0, 0, 0, loc)))
	require.NotNil(t, closed.SessionMinutes)
	assert.Equal(t, 840, *closed.SessionMinutes)
}

func TestCloseStaleSessions_NothingOpen(t *testing.T) {
	calendar, err := shiftcal.New(config.ShiftConfig{
		Timezone:        "Asia/Karachi",
		StartHour:       17,
		EndHour:         8,
		LoginCutoffHour: 9,
		ExpiryHours:     16,
	})
	require.NoError(t, err)

	repo := &stubJanitorRepo{}
	jobs := NewAttendanceJobs(repo, calendar, time.Hour)

	require.NoError(t, jobs.CloseStaleSessions(context.Background()))
	assert.Empty(t, repo.updated)
}
