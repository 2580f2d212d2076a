package attendance

import "context"

// AttendanceService drives the per-employee session state machine and the
// break tracker.
type AttendanceService interface {
	// Login records a shift login for the employee bound to the secret key.
	// A repeat login while a session is open is not an error; the response
	// carries AlreadyLoggedIn and nothing is mutated.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Logout closes the employee's open session and computes its duration.
	Logout(ctx context.Context, req LogoutRequest) (LogoutResponse, error)

	// StartBreak opens a break on an attendance record
	StartBreak(ctx context.Context, attendanceID string, req StartBreakRequest) (BreakResponse, error)

	// EndBreak closes the record's open break
	EndBreak(ctx context.Context, attendanceID string) (BreakResponse, error)
}
