package stock

import (
	"context"
	"log/slog"

	"github.com/fieldhr/hrms-backend-go/internal/domain/stock"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
	"github.com/fieldhr/hrms-backend-go/internal/repository/postgresql"
)

type StockServiceImpl struct {
	db        *database.DB
	stockRepo stock.StockRepository
	logger    *slog.Logger
}

func NewStockService(db *database.DB, stockRepo stock.StockRepository, logger *slog.Logger) stock.StockService {
	return &StockServiceImpl{
		db:        db,
		stockRepo: stockRepo,
		logger:    logger,
	}
}

func (s *StockServiceImpl) UpsertItem(ctx context.Context, req stock.UpsertItemRequest) (stock.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return stock.ItemResponse{}, err
	}

	saved, err := s.stockRepo.UpsertItem(ctx, stock.Item{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		Threshold:   req.Threshold,
	})
	if err != nil {
		return stock.ItemResponse{}, err
	}

	if saved.IsLow() {
		s.logger.Warn("stock item at or below threshold",
			slog.String("item_id", saved.ID),
			slog.String("name", saved.Name),
			slog.Int("quantity", saved.Quantity),
			slog.Int("threshold", saved.Threshold),
		)
	}

	return stock.ToItemResponse(saved), nil
}

func (s *StockServiceImpl) ListItems(ctx context.Context) ([]stock.ItemResponse, error) {
	items, err := s.stockRepo.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]stock.ItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, stock.ToItemResponse(item))
	}
	return result, nil
}

// Allocate decrements central stock and credits the engineer inside one
// transaction, so a failed credit never loses quantity.
func (s *StockServiceImpl) Allocate(ctx context.Context, req stock.AllocateRequest) (stock.AllocationResponse, error) {
	if err := req.Validate(); err != nil {
		return stock.AllocationResponse{}, err
	}

	var saved stock.Allocation
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if _, err := s.stockRepo.AdjustItemQuantity(ctx, req.ItemID, -req.Quantity); err != nil {
			return err
		}

		var err error
		saved, err = s.stockRepo.UpsertAllocation(ctx, stock.Allocation{
			EngineerID: req.EngineerID,
			ItemID:     req.ItemID,
			Quantity:   req.Quantity,
		})
		return err
	})
	if err != nil {
		return stock.AllocationResponse{}, err
	}

	s.logger.Info("stock allocated",
		slog.String("item_id", req.ItemID),
		slog.String("engineer_id", req.EngineerID),
		slog.Int("quantity", req.Quantity),
	)

	return stock.ToAllocationResponse(saved), nil
}

func (s *StockServiceImpl) ListAllocations(ctx context.Context, engineerID string) ([]stock.AllocationResponse, error) {
	allocations, err := s.stockRepo.ListAllocationsByEngineer(ctx, engineerID)
	if err != nil {
		return nil, err
	}

	result := make([]stock.AllocationResponse, 0, len(allocations))
	for _, a := range allocations {
		result = append(result, stock.ToAllocationResponse(a))
	}
	return result, nil
}

func (s *StockServiceImpl) LowStock(ctx context.Context) (stock.LowStockReport, error) {
	items, err := s.stockRepo.ListLowItems(ctx)
	if err != nil {
		return stock.LowStockReport{}, err
	}

	allocations, err := s.stockRepo.ListLowAllocations(ctx)
	if err != nil {
		return stock.LowStockReport{}, err
	}

	report := stock.LowStockReport{
		Items:       make([]stock.ItemResponse, 0, len(items)),
		Allocations: make([]stock.AllocationResponse, 0, len(allocations)),
	}
	for _, item := range items {
		report.Items = append(report.Items, stock.ToItemResponse(item))
	}
	for _, a := range allocations {
		report.Allocations = append(report.Allocations, stock.ToAllocationResponse(a))
	}

	return report, nil
}
