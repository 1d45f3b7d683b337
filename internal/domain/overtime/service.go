package overtime

import (
	"context"
	"time"
)

// OvertimeService reconciles punch records into per-day overtime.
type OvertimeService interface {
	// RecomputeForDay rebuilds the (user, date) record from the day's first
	// punch-in and last punch-out. A day without both punches yields no
	// record and no error.
	RecomputeForDay(ctx context.Context, userID string, date time.Time) (*RecordResponse, error)

	// RecomputeAllForDay runs RecomputeForDay for every user, collecting
	// per-user failures. Used by the nightly job.
	RecomputeAllForDay(ctx context.Context, date time.Time) error

	// ListByUser returns records for the user within [from, to] inclusive.
	ListByUser(ctx context.Context, userID string, from, to time.Time) ([]RecordResponse, error)
}
