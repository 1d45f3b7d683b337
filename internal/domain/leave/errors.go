package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already approved or rejected")
	ErrInvalidDateRange             = errors.New("end date must be on or after start date")

	// ErrMalformedLeaveRecord marks a stored request missing its start or
	// end date. Aggregation logs and skips such rows; it never fails.
	ErrMalformedLeaveRecord = errors.New("leave record is missing start or end date")
)
