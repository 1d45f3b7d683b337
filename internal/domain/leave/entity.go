package leave

import "time"

// Type enum
type Type string

const (
	TypeCasual Type = "casual"
	TypeSick   Type = "sick"
	TypeEarned Type = "earned"
	TypeUnpaid Type = "unpaid"
	TypeAnnual Type = "annual"
	TypeOther  Type = "other"
)

// DayType enum
type DayType string

const (
	DayTypeFull DayType = "full"
	DayTypeHalf DayType = "half"
)

// Status enum
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a leave request. StartDate/EndDate are pointers because legacy
// rows may miss either; such rows are skipped during payroll aggregation.
type Request struct {
	ID         string
	UserID     string
	StartDate  *time.Time
	EndDate    *time.Time
	Type       Type
	DayType    DayType
	Status     Status
	Reason     *string
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	UserName *string
}

// OverlapDays returns the inclusive number of calendar days the request
// shares with [from, to], clamped to zero. Requests missing either date
// report ErrMalformedLeaveRecord.
func (r Request) OverlapDays(from, to time.Time) (int, error) {
	if r.StartDate == nil || r.EndDate == nil {
		return 0, ErrMalformedLeaveRecord
	}

	start := dateOnly(*r.StartDate)
	end := dateOnly(*r.EndDate)
	from = dateOnly(from)
	to = dateOnly(to)

	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return 0, nil
	}
	return days, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
