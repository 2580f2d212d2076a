package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbook/attendance-backend-go/internal/config"
	"github.com/shiftbook/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftbook/attendance-backend-go/internal/domain/employee"
	"github.com/shiftbook/attendance-backend-go/internal/domain/report"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/shiftcal"
)

// Unused interface methods fall through to the nil embed and would panic if
// called; the report service only reads.
type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.Attendance
}

func (s *stubAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range s.records {
		if rec.Date.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *stubAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range s.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	roster []employee.Employee
}

func (s *stubEmployeeRepo) ListAll(ctx context.Context) ([]employee.Employee, error) {
	return s.roster, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range s.roster {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func newReportService(t *testing.T, records []attendance.Attendance, roster []employee.Employee) (*ReportServiceImpl, *time.Location) {
	t.Helper()

	calendar, err := shiftcal.New(config.ShiftConfig{
		Timezone:        "Asia/Karachi",
		StartHour:       17,
		EndHour:         8,
		LoginCutoffHour: 9,
		ExpiryHours:     16,
	})
	require.NoError(t, err)

	svc := NewReportService(
		&stubAttendanceRepo{records: records},
		&stubEmployeeRepo{roster: roster},
		calendar,
		-160,
		16,
	).(*ReportServiceImpl)
	return svc, calendar.Location()
}

func ptr[T any](v T) *T { return &v }

func TestGetDailySnapshot_PartitionsRoster(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	roster := []employee.Employee{
		{ID: "emp-1", Name: "Ayesha Khan", Email: "ayesha@example.com", Designation: "Support Engineer", ScheduledIn: "17:00:00"},
		{ID: "emp-2", Name: "Bilal Ahmed", Email: "bilal@example.com", Designation: "Analyst", ScheduledIn: "17:00:00"},
		{ID: "emp-3", Name: "Sana Tariq", Email: "sana@example.com", Designation: "Operator", ScheduledIn: "17:00:00"},
	}

	svc, loc := newReportService(t, nil, roster)
	shiftDay := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)

	in1 := time.Date(2024, 3, 15, 17, 5, 0, 0, loc)
	in2 := time.Date(2024, 3, 15, 20, 0, 0, 0, loc)
	out2 := time.Date(2024, 3, 16, 4, 0, 0, 0, loc)
	records := []attendance.Attendance{
		{ID: "att-1", EmployeeID: "emp-1", Date: shiftDay, InTime: &in1, IsLoggedIn: true},
		{ID: "att-2", EmployeeID: "emp-2", Date: shiftDay, InTime: &in2, OutTime: &out2, IsLoggedIn: false},
	}
	svc.AttendanceRepository = &stubAttendanceRepo{records: records}

	resp, err := svc.GetDailySnapshot(context.Background(), &day)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", resp.Date)
	assert.Equal(t, 3, resp.TotalEmployees)
	assert.Len(t, resp.LoggedIn, 2)
	assert.Len(t, resp.OnLeave, 1)
	assert.Equal(t, 3, len(resp.LoggedIn)+len(resp.OnLeave))

	byID := make(map[string]report.SnapshotEntry)
	for _, e := range resp.LoggedIn {
		byID[e.EmployeeID] = e
	}
	for _, e := range resp.OnLeave {
		byID[e.EmployeeID] = e
	}

	// 17:05 is inside the on-time window around a 17:00 scheduled start.
	assert.Equal(t, "Present", byID["emp-1"].Status)
	assert.True(t, byID["emp-1"].IsOnTime)
	assert.Equal(t, "17:05:00", byID["emp-1"].LoginTime)
	assert.Equal(t, "Not Logged Out Yet", byID["emp-1"].LogoutTime)

	// 20:00 is three hours late.
	assert.Equal(t, "Attendance Marked", byID["emp-2"].Status)
	assert.False(t, byID["emp-2"].IsOnTime)
	assert.Equal(t, "04:00:00", byID["emp-2"].LogoutTime)

	assert.Equal(t, "Leave", byID["emp-3"].Status)
	assert.Equal(t, "Not Logged In", byID["emp-3"].LoginTime)
	assert.False(t, byID["emp-3"].IsLoggedIn)
}

func TestGetDailySnapshot_UnknownEmployeeRecordKept(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	svc, loc := newReportService(t, nil, nil)
	shiftDay := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	in := time.Date(2024, 3, 15, 18, 0, 0, 0, loc)
	svc.AttendanceRepository = &stubAttendanceRepo{records: []attendance.Attendance{
		{ID: "att-1", EmployeeID: "ghost", Date: shiftDay, InTime: &in, IsLoggedIn: true},
	}}

	resp, err := svc.GetDailySnapshot(context.Background(), &day)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalEmployees)
	require.Len(t, resp.LoggedIn, 1)
	assert.Equal(t, "Unknown", resp.LoggedIn[0].EmployeeName)
	assert.False(t, resp.LoggedIn[0].IsOnTime)
}

func TestGetDailySnapshot_EmptyDayHasEmptyBuckets(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	svc, _ := newReportService(t, nil, nil)

	resp, err := svc.GetDailySnapshot(context.Background(), &day)

	require.NoError(t, err)
	assert.NotNil(t, resp.LoggedIn)
	assert.NotNil(t, resp.OnLeave)
	assert.Empty(t, resp.LoggedIn)
	assert.Empty(t, resp.OnLeave)
}

func TestGetEmployeeReport_TotalsAndBreaks(t *testing.T) {
	roster := []employee.Employee{
		{ID: "emp-1", Name: "Ayesha Khan", Email: "ayesha@example.com", Designation: "Support Engineer", ScheduledIn: "17:00:00"},
	}
	svc, loc := newReportService(t, nil, roster)

	day1 := time.Date(2024, 3, 14, 0, 0, 0, 0, loc)
	day2 := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)

	in1 := time.Date(2024, 3, 14, 17, 0, 0, 0, loc)
	out1 := time.Date(2024, 3, 15, 1, 30, 0, 0, loc)
	bStart := time.Date(2024, 3, 14, 21, 0, 0, 0, loc)
	bEnd := time.Date(2024, 3, 14, 21, 45, 0, 0, loc)

	svc.AttendanceRepository = &stubAttendanceRepo{records: []attendance.Attendance{
		{
			ID: "att-1", EmployeeID: "emp-1", Date: day1,
			InTime: &in1, OutTime: &out1, IsLoggedIn: false,
			SessionMinutes: ptr(510),
			Breaks: []attendance.Break{
				{ID: "brk-1", AttendanceID: "att-1", StartAt: bStart, EndAt: &bEnd, Type: "meal", Note: "dinner"},
			},
		},
		{ID: "att-2", EmployeeID: "emp-1", Date: day2},
	}}

	resp, err := svc.GetEmployeeReport(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, 1, resp.TotalPresents)
	assert.Equal(t, 1, resp.TotalLeaves)
	assert.Equal(t, "45 minutes", resp.TotalBreakTime)
	require.Len(t, resp.Records, 2)

	byDate := make(map[string]report.ReportRecord)
	for _, rec := range resp.Records {
		byDate[rec.Date] = rec
	}

	worked := byDate["2024-03-14"]
	assert.Equal(t, "17:00:00", worked.LoginTime)
	assert.Equal(t, "01:30:00", worked.LogoutTime)
	assert.Equal(t, "45 minutes", worked.DailyBreakTime)
	require.Len(t, worked.Breaks, 1)
	assert.Equal(t, "21:00:00", worked.Breaks[0].StartTime)
	assert.Equal(t, "21:45:00", worked.Breaks[0].EndTime)
	assert.Equal(t, "45 minutes", worked.Breaks[0].Duration)

	leave := byDate["2024-03-15"]
	assert.Equal(t, "Not Logged In", leave.LoginTime)
	assert.Equal(t, "Not Logged Out Yet", leave.LogoutTime)
	assert.Equal(t, "0 minutes", leave.DailyBreakTime)
}

func TestGetEmployeeReport_OpenSessionHidesLogout(t *testing.T) {
	roster := []employee.Employee{
		{ID: "emp-1", Name: "Ayesha Khan", Email: "ayesha@example.com", ScheduledIn: "17:00:00"},
	}
	svc, loc := newReportService(t, nil, roster)

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	in := time.Date(2024, 3, 15, 17, 0, 0, 0, loc)
	svc.AttendanceRepository = &stubAttendanceRepo{records: []attendance.Attendance{
		{ID: "att-1", EmployeeID: "emp-1", Date: day, InTime: &in, IsLoggedIn: true},
	}}

	resp, err := svc.GetEmployeeReport(context.Background(), "emp-1")

	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "Not Logged Out Yet", resp.Records[0].LogoutTime)
	assert.True(t, resp.Records[0].IsLoggedIn)
}

func TestGetEmployeeReport_UnknownEmployee(t *testing.T) {
	svc, _ := newReportService(t, nil, nil)

	_, err := svc.GetEmployeeReport(context.Background(), "missing")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetEmployeeReport_KnownEmployeeWithNoRecords(t *testing.T) {
	roster := []employee.Employee{
		{ID: "emp-1", Name: "Ayesha Khan", Email: "ayesha@example.com", ScheduledIn: "17:00:00"},
	}
	svc, _ := newReportService(t, nil, roster)

	resp, err := svc.GetEmployeeReport(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Empty(t, resp.Records)
	assert.Zero(t, resp.TotalPresents)
	assert.Zero(t, resp.TotalLeaves)
	assert.Equal(t, "0 minutes", resp.TotalBreakTime)
}
