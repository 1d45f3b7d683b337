package attendance

import "time"

// Attendance is one punch record per user per calendar day. A day counts as
// worked when PunchIn is set, whether or not a punch-out followed.
type Attendance struct {
	ID                string
	UserID            string
	Date              time.Time
	PunchIn           *time.Time
	PunchOut          *time.Time
	PunchInLatitude   *float64
	PunchInLongitude  *float64
	PunchOutLatitude  *float64
	PunchOutLongitude *float64
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	UserName *string
}
