package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for punch records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByUserAndDate retrieves attendance for a specific user on a specific
	// date. Used to prevent double punch-in.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// SetPunchOut stamps the punch-out on an existing record
	SetPunchOut(ctx context.Context, id string, punchOut time.Time, lat, lng *float64) (Attendance, error)

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)

	// CountWorkedDays counts distinct days with a punch-in for the user
	// within [from, to] inclusive.
	CountWorkedDays(ctx context.Context, userID string, from, to time.Time) (int, error)

	// GetDayPunches returns the first punch-in and last punch-out for a
	// user on a date; nils when absent.
	GetDayPunches(ctx context.Context, userID string, date time.Time) (punchIn, punchOut *time.Time, err error)
}
