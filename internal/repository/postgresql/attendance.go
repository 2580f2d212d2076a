package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftbook/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftbook/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, date, in_time, out_time, is_logged_in, session_minutes, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.InTime, &att.OutTime,
		&att.IsLoggedIn, &att.SessionMinutes, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, in_time, out_time, is_logged_in, session_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.InTime,
		newAttendance.OutTime,
		newAttendance.IsLoggedIn,
		newAttendance.SessionMinutes,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if err := r.attachBreaks(ctx, []*attendance.Attendance{&att}); err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	// A calendar day can legitimately hold a finished day shift and a fresh
	// night shift for the same employee; the latest record decides state.
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date = $2
		ORDER BY in_time DESC NULLS LAST
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}
	return &att, nil
}

// GetOpenSession implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenSession(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND is_logged_in = TRUE
		ORDER BY date DESC, in_time DESC NULLS LAST
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoActiveSession
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open session: %w", err)
	}
	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET in_time = $2, out_time = $3, is_logged_in = $4, session_minutes = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, att.ID, att.InTime, att.OutTime, att.IsLoggedIn, att.SessionMinutes)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return r.list(ctx, `WHERE date = $1`, date)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return r.list(ctx, `WHERE employee_id = $1`, employeeID)
}

// ListOpenBefore implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListOpenBefore(ctx context.Context, day time.Time) ([]attendance.Attendance, error) {
	return r.list(ctx, `WHERE is_logged_in = TRUE AND date <= $1`, day)
}

func (r *attendanceRepository) list(ctx context.Context, where string, arg interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances ` + where + ` ORDER BY date, in_time`

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	refs := make([]*attendance.Attendance, len(attendances))
	for i := range attendances {
		refs[i] = &attendances[i]
	}
	if err := r.attachBreaks(ctx, refs); err != nil {
		return nil, err
	}
	return attendances, nil
}

// attachBreaks loads the break rows for a batch of records in one query.
func (r *attendanceRepository) attachBreaks(ctx context.Context, records []*attendance.Attendance) error {
	if len(records) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	ids := make([]string, 0, len(records))
	byID := make(map[string]*attendance.Attendance, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
		byID[rec.ID] = rec
	}

	query := `
		SELECT id, attendance_id, start_at, end_at, break_type, note, created_at
		FROM breaks
		WHERE attendance_id = ANY($1)
		ORDER BY start_at
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to list breaks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b attendance.Break
		if err := rows.Scan(&b.ID, &b.AttendanceID, &b.StartAt, &b.EndAt, &b.Type, &b.Note, &b.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan break: %w", err)
		}
		if rec, ok := byID[b.AttendanceID]; ok {
			rec.Breaks = append(rec.Breaks, b)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate breaks: %w", err)
	}
	return nil
}

// CreateBreak implements attendance.AttendanceRepository.
func (r *attendanceRepository) CreateBreak(ctx context.Context, b attendance.Break) (attendance.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO breaks (attendance_id, start_at, end_at, break_type, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, b.AttendanceID, b.StartAt, b.EndAt, b.Type, b.Note).
		Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return attendance.Break{}, fmt.Errorf("failed to create break: %w", err)
	}
	return b, nil
}

// GetOpenBreak implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenBreak(ctx context.Context, attendanceID string) (*attendance.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_id, start_at, end_at, break_type, note, created_at
		FROM breaks
		WHERE attendance_id = $1 AND end_at IS NULL
		LIMIT 1
	`

	var b attendance.Break
	err := q.QueryRow(ctx, query, attendanceID).
		Scan(&b.ID, &b.AttendanceID, &b.StartAt, &b.EndAt, &b.Type, &b.Note, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open break: %w", err)
	}
	return &b, nil
}

// CloseBreak implements attendance.AttendanceRepository.
func (r *attendanceRepository) CloseBreak(ctx context.Context, breakID string, endAt time.Time) (attendance.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE breaks
		SET end_at = $2
		WHERE id = $1
		RETURNING id, attendance_id, start_at, end_at, break_type, note, created_at
	`

	var b attendance.Break
	err := q.QueryRow(ctx, query, breakID, endAt).
		Scan(&b.ID, &b.AttendanceID, &b.StartAt, &b.EndAt, &b.Type, &b.Note, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Break{}, attendance.ErrNoOpenBreak
		}
		return attendance.Break{}, fmt.Errorf("failed to close break: %w", err)
	}
	return b, nil
}
