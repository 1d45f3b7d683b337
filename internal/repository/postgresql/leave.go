package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/leave"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func scanLeave(row pgx.Row, r *leave.Request) error {
	return row.Scan(
		&r.ID, &r.UserID, &r.StartDate, &r.EndDate, &r.Type, &r.DayType, &r.Status,
		&r.Reason, &r.ApprovedBy, &r.ApprovedAt, &r.CreatedAt, &r.UpdatedAt,
	)
}

func (r *leaveRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (id, user_id, start_date, end_date, type, day_type, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7)
		RETURNING id, user_id, start_date, end_date, type, day_type, status,
			reason, approved_by, approved_at, created_at, updated_at
	`

	var created leave.Request
	err := scanLeave(q.QueryRow(ctx, query,
		uuid.NewString(), request.UserID, request.StartDate, request.EndDate,
		request.Type, request.DayType, request.Reason,
	), &created)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, type, day_type, status,
			reason, approved_by, approved_at, created_at, updated_at
		FROM leaves
		WHERE id = $1
	`

	var request leave.Request
	if err := scanLeave(q.QueryRow(ctx, query, id), &request); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := "WHERE 1=1"
	args := []interface{}{}
	argn := 0

	if filter.UserID != nil {
		argn++
		conditions += fmt.Sprintf(" AND l.user_id = $%d", argn)
		args = append(args, *filter.UserID)
	}
	if filter.Status != nil {
		argn++
		conditions += fmt.Sprintf(" AND l.status = $%d", argn)
		args = append(args, *filter.Status)
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM leaves l "+conditions, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
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
		SELECT l.id, l.user_id, l.start_date, l.end_date, l.type, l.day_type, l.status,
			l.reason, l.approved_by, l.approved_at, l.created_at, l.updated_at, u.name
		FROM leaves l
		LEFT JOIN users u ON u.id = l.user_id
		` + conditions + fmt.Sprintf(" ORDER BY l.created_at DESC LIMIT $%d OFFSET $%d", argn+1, argn+2)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var result []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.StartDate, &req.EndDate, &req.Type, &req.DayType, &req.Status,
			&req.Reason, &req.ApprovedBy, &req.ApprovedAt, &req.CreatedAt, &req.UpdatedAt, &req.UserName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, req)
	}

	return result, total, rows.Err()
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $2, approved_by = $3, approved_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING id, user_id, start_date, end_date, type, day_type, status,
			reason, approved_by, approved_at, created_at, updated_at
	`

	var updated leave.Request
	err := scanLeave(q.QueryRow(ctx, query, id, status, approvedBy), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either missing or already processed; disambiguate for the caller.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return leave.Request{}, getErr
			}
			return leave.Request{}, leave.ErrLeaveRequestAlreadyProcessed
		}
		return leave.Request{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	return updated, nil
}

func (r *leaveRepository) ListApprovedOverlapping(ctx context.Context, userID string, from, to time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	// Rows missing start or end dates are returned too so the aggregator
	// can log and skip them.
	query := `
		SELECT id, user_id, start_date, end_date, type, day_type, status,
			reason, approved_by, approved_at, created_at, updated_at
		FROM leaves
		WHERE user_id = $1 AND status = 'approved'
			AND (start_date IS NULL OR end_date IS NULL
				OR NOT (end_date < $2 OR start_date > $3))
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	var result []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.StartDate, &req.EndDate, &req.Type, &req.DayType, &req.Status,
			&req.Reason, &req.ApprovedBy, &req.ApprovedAt, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, req)
	}

	return result, rows.Err()
}
