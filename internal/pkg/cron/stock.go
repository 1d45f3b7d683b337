package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/stock"
)

// StockJobs periodically scans for items and allocations sitting at or below
// their thresholds and logs an alert for each.
type StockJobs struct {
	stockService stock.StockService
	logger       *slog.Logger
}

func NewStockJobs(stockService stock.StockService, logger *slog.Logger) *StockJobs {
	return &StockJobs{
		stockService: stockService,
		logger:       logger,
	}
}

func (j *StockJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("low_stock_scan", 6*time.Hour, j.ScanLowStock)
}

func (j *StockJobs) ScanLowStock(ctx context.Context) error {
	report, err := j.stockService.LowStock(ctx)
	if err != nil {
		return err
	}

	for _, item := range report.Items {
		j.logger.Warn("cron: low stock item",
			slog.String("item_id", item.ID),
			slog.String("name", item.Name),
			slog.Int("quantity", item.Quantity),
			slog.Int("threshold", item.Threshold),
		)
	}
	for _, a := range report.Allocations {
		j.logger.Warn("cron: low engineer allocation",
			slog.String("allocation_id", a.ID),
			slog.String("engineer_id", a.EngineerID),
			slog.String("item_id", a.ItemID),
			slog.Int("quantity", a.Quantity),
		)
	}

	return nil
}
