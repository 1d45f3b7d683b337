package leave

import (
	"context"
	"log/slog"

	"github.com/fieldhr/hrms-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
	logger    *slog.Logger
}

func NewLeaveService(leaveRepo leave.LeaveRepository, logger *slog.Logger) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo: leaveRepo,
		logger:    logger,
	}
}

func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	start, end := req.ParseDates()

	dayType := leave.DayType(req.DayType)
	if dayType == "" {
		dayType = leave.DayTypeFull
	}

	created, err := s.leaveRepo.Create(ctx, leave.Request{
		UserID:    req.UserID,
		StartDate: &start,
		EndDate:   &end,
		Type:      leave.Type(req.Type),
		DayType:   dayType,
		Reason:    req.Reason,
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	s.logger.Info("leave request filed",
		slog.String("leave_id", created.ID),
		slog.String("user_id", req.UserID),
	)

	return leave.ToResponse(created), nil
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, id, approverID string) (leave.RequestResponse, error) {
	return s.transition(ctx, id, leave.StatusApproved, approverID)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, id, approverID string) (leave.RequestResponse, error) {
	return s.transition(ctx, id, leave.StatusRejected, approverID)
}

func (s *LeaveServiceImpl) transition(ctx context.Context, id string, status leave.Status, approverID string) (leave.RequestResponse, error) {
	updated, err := s.leaveRepo.UpdateStatus(ctx, id, status, approverID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	s.logger.Info("leave request processed",
		slog.String("leave_id", id),
		slog.String("status", string(status)),
		slog.String("approved_by", approverID),
	)

	return leave.ToResponse(updated), nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.RequestResponse, int64, error) {
	requests, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, leave.ToResponse(r))
	}
	return result, total, nil
}
