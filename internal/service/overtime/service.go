package overtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/attendance"
	"github.com/fieldhr/hrms-backend-go/internal/domain/overtime"
	"github.com/fieldhr/hrms-backend-go/internal/domain/user"
)

type OvertimeServiceImpl struct {
	overtimeRepo   overtime.OvertimeRepository
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	thresholdSecs  int64
	logger         *slog.Logger
}

func NewOvertimeService(
	overtimeRepo overtime.OvertimeRepository,
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	hoursPerWorkingDay int,
	logger *slog.Logger,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		overtimeRepo:   overtimeRepo,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		thresholdSecs:  int64(hoursPerWorkingDay) * 3600,
		logger:         logger,
	}
}

func (s *OvertimeServiceImpl) RecomputeForDay(ctx context.Context, userID string, date time.Time) (*overtime.RecordResponse, error) {
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	punchIn, punchOut, err := s.attendanceRepo.GetDayPunches(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if punchIn == nil || punchOut == nil {
		// An open or absent day yields no record; yesterday's run picks it
		// up once the punch-out lands.
		return nil, nil
	}

	worked := int64(punchOut.Sub(*punchIn).Seconds())
	if worked < 0 {
		worked = 0
	}

	overtimeSecs := worked - s.thresholdSecs
	if overtimeSecs < 0 {
		overtimeSecs = 0
	}

	saved, err := s.overtimeRepo.Upsert(ctx, overtime.Record{
		UserID:          userID,
		Date:            date,
		WorkedSeconds:   worked,
		OvertimeSeconds: overtimeSecs,
	})
	if err != nil {
		return nil, err
	}

	resp := overtime.ToRecordResponse(saved)
	return &resp, nil
}

func (s *OvertimeServiceImpl) RecomputeAllForDay(ctx context.Context, date time.Time) error {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return err
	}

	failed := 0
	for _, u := range users {
		if _, err := s.RecomputeForDay(ctx, u.ID, date); err != nil {
			failed++
			s.logger.Warn("overtime reconciliation failed for user",
				slog.String("user_id", u.ID),
				slog.String("date", date.Format("2006-01-02")),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.Info("overtime reconciliation finished",
		slog.String("date", date.Format("2006-01-02")),
		slog.Int("users", len(users)),
		slog.Int("failed", failed),
	)

	return nil
}

func (s *OvertimeServiceImpl) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]overtime.RecordResponse, error) {
	records, err := s.overtimeRepo.ListByUser(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]overtime.RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, overtime.ToRecordResponse(r))
	}
	return result, nil
}
