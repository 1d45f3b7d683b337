package stock

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/fieldhr/hrms-backend-go/internal/domain/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStockRepo struct {
	stock.StockRepository
	items       []stock.Item
	allocations []stock.Allocation
}

func (f *fakeStockRepo) UpsertItem(_ context.Context, item stock.Item) (stock.Item, error) {
	item.ID = "item-" + item.Name
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeStockRepo) ListItems(_ context.Context) ([]stock.Item, error) {
	return f.items, nil
}

func (f *fakeStockRepo) ListLowItems(_ context.Context) ([]stock.Item, error) {
	var low []stock.Item
	for _, item := range f.items {
		if item.IsLow() {
			low = append(low, item)
		}
	}
	return low, nil
}

func (f *fakeStockRepo) ListLowAllocations(_ context.Context) ([]stock.Allocation, error) {
	return f.allocations, nil
}

func newTestService(repo stock.StockRepository) stock.StockService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStockService(nil, repo, logger)
}

func TestUpsertItem_MarksLow(t *testing.T) {
	svc := newTestService(&fakeStockRepo{})

	resp, err := svc.UpsertItem(context.Background(), stock.UpsertItemRequest{
		Name:      "router",
		Quantity:  2,
		Threshold: 5,
	})
	require.NoError(t, err)
	assert.True(t, resp.Low)
}

func TestUpsertItem_Validation(t *testing.T) {
	svc := newTestService(&fakeStockRepo{})

	_, err := svc.UpsertItem(context.Background(), stock.UpsertItemRequest{
		Name:     "",
		Quantity: -1,
	})
	assert.Error(t, err)
}

func TestLowStock(t *testing.T) {
	repo := &fakeStockRepo{
		items: []stock.Item{
			{ID: "i1", Name: "cable", Quantity: 100, Threshold: 10},
			{ID: "i2", Name: "modem", Quantity: 3, Threshold: 5},
			{ID: "i3", Name: "splitter", Quantity: 5, Threshold: 5},
		},
		allocations: []stock.Allocation{
			{ID: "a1", EngineerID: "eng-1", ItemID: "i2", Quantity: 1},
		},
	}
	svc := newTestService(repo)

	report, err := svc.LowStock(context.Background())
	require.NoError(t, err)

	// Quantity equal to threshold counts as low.
	require.Len(t, report.Items, 2)
	assert.Equal(t, "i2", report.Items[0].ID)
	assert.Equal(t, "i3", report.Items[1].ID)
	require.Len(t, report.Allocations, 1)
	assert.Equal(t, "eng-1", report.Allocations[0].EngineerID)
}

func TestItemIsLow(t *testing.T) {
	assert.True(t, stock.Item{Quantity: 0, Threshold: 0}.IsLow())
	assert.True(t, stock.Item{Quantity: 5, Threshold: 5}.IsLow())
	assert.False(t, stock.Item{Quantity: 6, Threshold: 5}.IsLow())
}
