package leave

import (
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	UserID    string  `json:"-"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Type      string  `json:"type"`
	DayType   string  `json:"day_type"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be on or after start_date"})
	}

	switch Type(r.Type) {
	case TypeCasual, TypeSick, TypeEarned, TypeUnpaid, TypeAnnual, TypeOther:
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of casual, sick, earned, unpaid, annual, other"})
	}

	if r.DayType != "" && r.DayType != string(DayTypeFull) && r.DayType != string(DayTypeHalf) {
		errs = append(errs, validator.ValidationError{Field: "day_type", Message: "must be 'full' or 'half'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	Type       string  `json:"type"`
	DayType    string  `json:"day_type"`
	Status     string  `json:"status"`
	Reason     *string `json:"reason,omitempty"`
	ApprovedBy *string `json:"approved_by,omitempty"`
	UserName   *string `json:"user_name,omitempty"`
}

type ListFilter struct {
	UserID *string
	Status *Status
	Page   int
	Limit  int
}

func ToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		Type:       string(r.Type),
		DayType:    string(r.DayType),
		Status:     string(r.Status),
		Reason:     r.Reason,
		ApprovedBy: r.ApprovedBy,
		UserName:   r.UserName,
	}
	if r.StartDate != nil {
		s := r.StartDate.Format("2006-01-02")
		resp.StartDate = &s
	}
	if r.EndDate != nil {
		s := r.EndDate.Format("2006-01-02")
		resp.EndDate = &s
	}
	return resp
}

// ParseDates converts validated request dates.
func (r *ApplyRequest) ParseDates() (start, end time.Time) {
	start, _ = time.Parse("2006-01-02", r.StartDate)
	end, _ = time.Parse("2006-01-02", r.EndDate)
	return start, end
}
