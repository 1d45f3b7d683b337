package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter ListFilter) ([]Request, int64, error)

	// UpdateStatus transitions a pending request. Returns
	// ErrLeaveRequestAlreadyProcessed when the row is no longer pending.
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy string) (Request, error)

	// ListApprovedOverlapping returns approved requests for the user whose
	// date range touches [from, to]. Rows with a missing start or end date
	// are included so the caller can log and skip them.
	ListApprovedOverlapping(ctx context.Context, userID string, from, to time.Time) ([]Request, error)
}
