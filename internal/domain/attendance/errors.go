package attendance

import "errors"

// Attendance domain errors
var (
	// Session state machine errors
	ErrAlreadyMarked   = errors.New("attendance already marked for this shift")
	ErrNoActiveSession = errors.New("no active login session found")

	// Break tracker errors
	ErrBreakAlreadyOpen = errors.New("a break is already open on this record")
	ErrNoOpenBreak      = errors.New("no open break on this record")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
