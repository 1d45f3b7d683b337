package stock

import "context"

type StockRepository interface {
	// Items
	UpsertItem(ctx context.Context, item Item) (Item, error)
	GetItemByID(ctx context.Context, id string) (Item, error)
	ListItems(ctx context.Context) ([]Item, error)
	AdjustItemQuantity(ctx context.Context, id string, delta int) (Item, error)

	// Allocations
	UpsertAllocation(ctx context.Context, allocation Allocation) (Allocation, error)
	ListAllocationsByEngineer(ctx context.Context, engineerID string) ([]Allocation, error)

	// Low stock
	ListLowItems(ctx context.Context) ([]Item, error)
	ListLowAllocations(ctx context.Context) ([]Allocation, error)
}
