package report

import (
	"context"
	"time"
)

// ReportService aggregates attendance records into read-only reports. Both
// operations tolerate records mid-transition (logged in, not yet out).
type ReportService interface {
	// GetDailySnapshot partitions the full roster into logged-in and leave
	// buckets for a shift-day. A nil date means the current reporting day.
	GetDailySnapshot(ctx context.Context, date *time.Time) (DailySnapshotResponse, error)

	// GetEmployeeReport builds the historical report for one employee.
	GetEmployeeReport(ctx context.Context, employeeID string) (EmployeeReportResponse, error)
}
