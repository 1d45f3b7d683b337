package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests
type LeaveService interface {
	// Apply files a new request in pending status.
	Apply(ctx context.Context, req ApplyRequest) (RequestResponse, error)

	// Approve transitions a pending request to approved.
	Approve(ctx context.Context, id, approverID string) (RequestResponse, error)

	// Reject transitions a pending request to rejected.
	Reject(ctx context.Context, id, approverID string) (RequestResponse, error)

	// List retrieves requests with filters and pagination.
	List(ctx context.Context, filter ListFilter) ([]RequestResponse, int64, error)
}
