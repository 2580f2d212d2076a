package report

// ========================================
// REPORT DTOs
// ========================================

// SnapshotEntry is one employee's row in the daily snapshot. Every rostered
// employee appears in exactly one of the two buckets.
type SnapshotEntry struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	EmployeeEmail  string `json:"employee_email"`
	Designation    string `json:"designation"`
	LoginTime      string `json:"login_time"`
	LogoutTime     string `json:"logout_time"`
	IsLoggedIn     bool   `json:"is_logged_in"`
	Date           string `json:"date"`
	TotalEmployees int    `json:"total_employees"`
	IsOnTime       bool   `json:"is_on_time"`
	Status         string `json:"status"`
}

type DailySnapshotResponse struct {
	Date           string          `json:"date"`
	TotalEmployees int             `json:"total_employees"`
	LoggedIn       []SnapshotEntry `json:"logged_in_employees"`
	OnLeave        []SnapshotEntry `json:"leave_employees"`
}

type ReportBreak struct {
	StartTime string `json:"break_start_time"`
	EndTime   string `json:"break_end_time"`
	Duration  string `json:"break_duration"`
	Type      string `json:"break_type"`
	Note      string `json:"break_notes"`
}

type ReportRecord struct {
	Date           string        `json:"date"`
	LoginTime      string        `json:"login_time"`
	LogoutTime     string        `json:"logout_time"`
	IsLoggedIn     bool          `json:"is_logged_in"`
	Breaks         []ReportBreak `json:"breaks"`
	DailyBreakTime string        `json:"daily_break_duration"`
}

// EmployeeReportResponse is the historical report for one employee. A known
// employee with no records yields an empty Records slice and zero totals,
// which is distinct from the 404 an unknown employee produces.
type EmployeeReportResponse struct {
	EmployeeID     string         `json:"employee_id"`
	EmployeeName   string         `json:"employee_name"`
	EmployeeEmail  string         `json:"employee_email"`
	Records        []ReportRecord `json:"attendance_records"`
	TotalPresents  int            `json:"total_presents"`
	TotalLeaves    int            `json:"total_leaves"`
	TotalBreakTime string         `json:"total_break_time"`
}
