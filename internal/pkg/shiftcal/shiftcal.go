// Package shiftcal maps wall-clock timestamps to shift-day buckets for an
// overnight shift that crosses midnight. All arithmetic happens in one fixed
// time zone so shift boundaries never shift with the host clock.
package shiftcal

import (
	"fmt"
	"time"

	"github.com/shiftbook/attendance-backend-go/internal/config"
)

type Calendar struct {
	loc         *time.Location
	startHour   int
	endHour     int
	cutoffHour  int
	expiryHours int
}

func New(cfg config.ShiftConfig) (*Calendar, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load shift timezone %q: %w", cfg.Timezone, err)
	}
	return &Calendar{
		loc:         loc,
		startHour:   cfg.StartHour,
		endHour:     cfg.EndHour,
		cutoffHour:  cfg.LoginCutoffHour,
		expiryHours: cfg.ExpiryHours,
	}, nil
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Now returns the current time in the calendar's zone.
func (c *Calendar) Now() time.Time {
	return time.Now().In(c.loc)
}

// In moves an arbitrary timestamp into the calendar's zone.
func (c *Calendar) In(t time.Time) time.Time {
	return t.In(c.loc)
}

// ReportingDay resolves the shift-day bucket used by reporting: anything
// before today's shift start (including the 00:00 to start tail of last
// night's shift) belongs to yesterday's shift-day.
//
// This rule is deliberately distinct from LoginDay; the two call sites
// diverge and must stay separate.
func (c *Calendar) ReportingDay(now time.Time) time.Time {
	now = now.In(c.loc)
	shiftStart := time.Date(now.Year(), now.Month(), now.Day(), c.startHour, 0, 0, 0, c.loc)
	if now.Before(shiftStart) {
		return c.Day(now.AddDate(0, 0, -1))
	}
	return c.Day(now)
}

// LoginDay resolves the shift-day a fresh login belongs to: before the early
// cutoff (09:00 by default) a straggler still belongs to yesterday's shift.
func (c *Calendar) LoginDay(now time.Time) time.Time {
	now = now.In(c.loc)
	if now.Hour() < c.cutoffHour {
		return c.Day(now.AddDate(0, 0, -1))
	}
	return c.Day(now)
}

// Day truncates a timestamp to midnight of its calendar date in the
// calendar's zone.
func (c *Calendar) Day(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// Window returns the shift window for a shift-day key: start hour on that day
// through the end hour on the next calendar day.
func (c *Calendar) Window(day time.Time) (start, end time.Time) {
	day = c.Day(day)
	start = day.Add(time.Duration(c.startHour) * time.Hour)
	end = day.AddDate(0, 0, 1).Add(time.Duration(c.endHour) * time.Hour)
	return start, end
}

// ShiftExpiry returns the client session expiry hint for a shift-day.
func (c *Calendar) ShiftExpiry(day time.Time) time.Time {
	return c.Day(day).Add(time.Duration(c.expiryHours) * time.Hour)
}

// AfterShiftStart reports whether the current hour has reached the shift
// start, the gate for opening a second record on the same calendar day.
func (c *Calendar) AfterShiftStart(now time.Time) bool {
	return now.In(c.loc).Hour() >= c.startHour
}
