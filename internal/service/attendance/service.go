package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	logger         *slog.Logger
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// The server clock is authoritative for punch timestamps; client-side times
// are never accepted.
func (s *AttendanceServiceImpl) today() (time.Time, time.Time) {
	now := s.now().UTC()
	return now, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now, date := s.today()

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, req.UserID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil && existing.PunchIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedIn
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		UserID:           req.UserID,
		Date:             date,
		PunchIn:          &now,
		PunchInLatitude:  req.Latitude,
		PunchInLongitude: req.Longitude,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.logger.Info("punch in recorded",
		slog.String("user_id", req.UserID),
		slog.String("date", date.Format("2006-01-02")),
	)

	return attendance.ToResponse(created), nil
}

func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now, date := s.today()

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, req.UserID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing == nil || existing.PunchIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotPunchedIn
	}
	if existing.PunchOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedOut
	}

	updated, err := s.attendanceRepo.SetPunchOut(ctx, existing.ID, now, req.Latitude, req.Longitude)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.logger.Info("punch out recorded",
		slog.String("user_id", req.UserID),
		slog.String("date", date.Format("2006-01-02")),
	)

	return attendance.ToResponse(updated), nil
}

func (s *AttendanceServiceImpl) GetToday(ctx context.Context, userID string) (*attendance.AttendanceResponse, error) {
	_, date := s.today()

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	resp := attendance.ToResponse(*existing)
	return &resp, nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, int64, error) {
	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		result = append(result, attendance.ToResponse(a))
	}
	return result, total, nil
}
