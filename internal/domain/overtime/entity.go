package overtime

import "time"

// Record holds reconciled worked and overtime seconds for one user on one
// day. One row per (user, date); recomputation overwrites.
type Record struct {
	ID              string
	UserID          string
	Date            time.Time
	WorkedSeconds   int64
	OvertimeSeconds int64
	CreatedAt       time.Time
}
