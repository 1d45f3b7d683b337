package overtime

type RecordResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	Date            string `json:"date"`
	WorkedSeconds   int64  `json:"worked_seconds"`
	OvertimeSeconds int64  `json:"overtime_seconds"`
}

func ToRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		Date:            r.Date.Format("2006-01-02"),
		WorkedSeconds:   r.WorkedSeconds,
		OvertimeSeconds: r.OvertimeSeconds,
	}
}
