package stock

import (
	"context"
)

// StockService defines business logic for stock items and allocations
type StockService interface {
	// UpsertItem creates or updates a central stock item (keyed by SKU).
	UpsertItem(ctx context.Context, req UpsertItemRequest) (ItemResponse, error)

	// ListItems returns all central stock items.
	ListItems(ctx context.Context) ([]ItemResponse, error)

	// Allocate moves quantity from central stock to an engineer.
	Allocate(ctx context.Context, req AllocateRequest) (AllocationResponse, error)

	// ListAllocations returns an engineer's current holdings.
	ListAllocations(ctx context.Context, engineerID string) ([]AllocationResponse, error)

	// LowStock reports every item and allocation at or below threshold.
	LowStock(ctx context.Context) (LowStockReport, error)
}
