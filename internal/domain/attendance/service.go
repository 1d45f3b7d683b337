package attendance

import (
	"context"
)

// AttendanceService defines business logic for punch operations
type AttendanceService interface {
	// PunchIn opens today's attendance record for the user. Fails when a
	// record with a punch-in already exists for the day.
	PunchIn(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// PunchOut stamps the punch-out on today's open record. Fails when the
	// user has not punched in or has already punched out.
	PunchOut(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// GetToday returns the user's record for the current day, if any.
	GetToday(ctx context.Context, userID string) (*AttendanceResponse, error)

	// List retrieves punch records with filters and pagination.
	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, int64, error)
}
