package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/overtime"
)

// OvertimeJobs reconciles yesterday's punches into overtime records once a
// night.
type OvertimeJobs struct {
	overtimeService overtime.OvertimeService
	logger          *slog.Logger
}

func NewOvertimeJobs(overtimeService overtime.OvertimeService, logger *slog.Logger) *OvertimeJobs {
	return &OvertimeJobs{
		overtimeService: overtimeService,
		logger:          logger,
	}
}

func (j *OvertimeJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reconcile_overtime", 1*time.Hour, j.ReconcileYesterday)
}

// ReconcileYesterday runs only in the 00:00-00:59 UTC window so yesterday's
// punch-outs have all landed.
func (j *OvertimeJobs) ReconcileYesterday(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Hour() != 0 {
		return nil
	}

	yesterday := now.AddDate(0, 0, -1)
	j.logger.Info("cron: reconciling overtime", slog.String("date", yesterday.Format("2006-01-02")))

	return j.overtimeService.RecomputeAllForDay(ctx, yesterday)
}
