package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/overtime"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

func (r *overtimeRepository) Upsert(ctx context.Context, record overtime.Record) (overtime.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_records (id, user_id, date, worked_seconds, overtime_seconds)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE SET
			worked_seconds = EXCLUDED.worked_seconds,
			overtime_seconds = EXCLUDED.overtime_seconds
		RETURNING id, user_id, date, worked_seconds, overtime_seconds, created_at
	`

	var saved overtime.Record
	err := q.QueryRow(ctx, query,
		uuid.NewString(), record.UserID, record.Date, record.WorkedSeconds, record.OvertimeSeconds,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Date, &saved.WorkedSeconds, &saved.OvertimeSeconds, &saved.CreatedAt,
	)
	if err != nil {
		return overtime.Record{}, fmt.Errorf("failed to upsert overtime record: %w", err)
	}

	return saved, nil
}

func (r *overtimeRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (overtime.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, worked_seconds, overtime_seconds, created_at
		FROM overtime_records
		WHERE user_id = $1 AND date = $2
	`

	var rec overtime.Record
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.WorkedSeconds, &rec.OvertimeSeconds, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Record{}, overtime.ErrRecordNotFound
		}
		return overtime.Record{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	return rec, nil
}

func (r *overtimeRepository) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]overtime.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, worked_seconds, overtime_seconds, created_at
		FROM overtime_records
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime records: %w", err)
	}
	defer rows.Close()

	var result []overtime.Record
	for rows.Next() {
		var rec overtime.Record
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.WorkedSeconds, &rec.OvertimeSeconds, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan overtime record: %w", err)
		}
		result = append(result, rec)
	}

	return result, rows.Err()
}

func (r *overtimeRepository) SumSeconds(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// Inclusive of both boundary dates; negative rows are clamped.
	query := `
		SELECT COALESCE(SUM(GREATEST(overtime_seconds, 0)), 0)
		FROM overtime_records
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
	`

	var total int64
	if err := q.QueryRow(ctx, query, userID, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum overtime seconds: %w", err)
	}

	return total, nil
}
