package attendance

import (
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/pkg/validator"
)

type PunchRequest struct {
	UserID    string   `json:"-"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`
	PunchIn  *string `json:"punch_in,omitempty"`
	PunchOut *string `json:"punch_out,omitempty"`
	UserName *string `json:"user_name,omitempty"`
}

type ListFilter struct {
	UserID   *string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Limit    int
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:       a.ID,
		UserID:   a.UserID,
		Date:     a.Date.Format("2006-01-02"),
		UserName: a.UserName,
	}
	if a.PunchIn != nil {
		s := a.PunchIn.Format(time.RFC3339)
		resp.PunchIn = &s
	}
	if a.PunchOut != nil {
		s := a.PunchOut.Format(time.RFC3339)
		resp.PunchOut = &s
	}
	return resp
}
