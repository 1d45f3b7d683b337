package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/attendance"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, user_id, date, punch_in, punch_in_latitude, punch_in_longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, date, punch_in, punch_out,
			punch_in_latitude, punch_in_longitude, punch_out_latitude, punch_out_longitude,
			created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		uuid.NewString(), a.UserID, a.Date, a.PunchIn, a.PunchInLatitude, a.PunchInLongitude,
	).Scan(
		&created.ID, &created.UserID, &created.Date, &created.PunchIn, &created.PunchOut,
		&created.PunchInLatitude, &created.PunchInLongitude, &created.PunchOutLatitude, &created.PunchOutLongitude,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, punch_in, punch_out,
			punch_in_latitude, punch_in_longitude, punch_out_latitude, punch_out_longitude,
			created_at, updated_at
		FROM attendances
		WHERE user_id = $1 AND date = $2
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&a.ID, &a.UserID, &a.Date, &a.PunchIn, &a.PunchOut,
		&a.PunchInLatitude, &a.PunchInLongitude, &a.PunchOutLatitude, &a.PunchOutLongitude,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &a, nil
}

func (r *attendanceRepository) SetPunchOut(ctx context.Context, id string, punchOut time.Time, lat, lng *float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET punch_out = $2, punch_out_latitude = $3, punch_out_longitude = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, date, punch_in, punch_out,
			punch_in_latitude, punch_in_longitude, punch_out_latitude, punch_out_longitude,
			created_at, updated_at
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, id, punchOut, lat, lng).Scan(
		&a.ID, &a.UserID, &a.Date, &a.PunchIn, &a.PunchOut,
		&a.PunchInLatitude, &a.PunchInLongitude, &a.PunchOutLatitude, &a.PunchOutLongitude,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set punch out: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := "WHERE 1=1"
	args := []interface{}{}
	argn := 0

	if filter.UserID != nil {
		argn++
		conditions += fmt.Sprintf(" AND a.user_id = $%d", argn)
		args = append(args, *filter.UserID)
	}
	if filter.DateFrom != nil {
		argn++
		conditions += fmt.Sprintf(" AND a.date >= $%d", argn)
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		argn++
		conditions += fmt.Sprintf(" AND a.date <= $%d", argn)
		args = append(args, *filter.DateTo)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendances a " + conditions
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := `
		SELECT a.id, a.user_id, a.date, a.punch_in, a.punch_out,
			a.punch_in_latitude, a.punch_in_longitude, a.punch_out_latitude, a.punch_out_longitude,
			a.created_at, a.updated_at, u.name
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		` + conditions + fmt.Sprintf(" ORDER BY a.date DESC LIMIT $%d OFFSET $%d", argn+1, argn+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Date, &a.PunchIn, &a.PunchOut,
			&a.PunchInLatitude, &a.PunchInLongitude, &a.PunchOutLatitude, &a.PunchOutLongitude,
			&a.CreatedAt, &a.UpdatedAt, &a.UserName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, a)
	}

	return result, total, rows.Err()
}

func (r *attendanceRepository) CountWorkedDays(ctx context.Context, userID string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT date)
		FROM attendances
		WHERE user_id = $1 AND punch_in IS NOT NULL AND date BETWEEN $2 AND $3
	`

	var count int
	if err := q.QueryRow(ctx, query, userID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count worked days: %w", err)
	}

	return count, nil
}

func (r *attendanceRepository) GetDayPunches(ctx context.Context, userID string, date time.Time) (*time.Time, *time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT MIN(punch_in), MAX(punch_out)
		FROM attendances
		WHERE user_id = $1 AND date = $2
	`

	var punchIn, punchOut *time.Time
	if err := q.QueryRow(ctx, query, userID, date).Scan(&punchIn, &punchOut); err != nil {
		return nil, nil, fmt.Errorf("failed to get day punches: %w", err)
	}

	return punchIn, punchOut, nil
}
