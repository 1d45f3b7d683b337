package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldhr/hrms-backend-go/internal/domain/stock"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type stockRepository struct {
	db *database.DB
}

func NewStockRepository(db *database.DB) stock.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) UpsertItem(ctx context.Context, item stock.Item) (stock.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stock_items (id, sku, name, description, quantity, threshold)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (sku) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			quantity = EXCLUDED.quantity,
			threshold = EXCLUDED.threshold,
			updated_at = NOW()
		RETURNING id, sku, name, description, quantity, threshold, created_at, updated_at
	`

	var saved stock.Item
	err := q.QueryRow(ctx, query,
		uuid.NewString(), item.SKU, item.Name, item.Description, item.Quantity, item.Threshold,
	).Scan(
		&saved.ID, &saved.SKU, &saved.Name, &saved.Description, &saved.Quantity, &saved.Threshold,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return stock.Item{}, fmt.Errorf("failed to upsert stock item: %w", err)
	}

	return saved, nil
}

func (r *stockRepository) GetItemByID(ctx context.Context, id string) (stock.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, sku, name, description, quantity, threshold, created_at, updated_at
		FROM stock_items
		WHERE id = $1
	`

	var item stock.Item
	err := q.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.SKU, &item.Name, &item.Description, &item.Quantity, &item.Threshold,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return stock.Item{}, stock.ErrItemNotFound
		}
		return stock.Item{}, fmt.Errorf("failed to get stock item: %w", err)
	}

	return item, nil
}

func (r *stockRepository) ListItems(ctx context.Context) ([]stock.Item, error) {
	return r.listItems(ctx, "ORDER BY name")
}

func (r *stockRepository) ListLowItems(ctx context.Context) ([]stock.Item, error) {
	return r.listItems(ctx, "WHERE quantity <= threshold ORDER BY quantity")
}

func (r *stockRepository) listItems(ctx context.Context, tail string) ([]stock.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, sku, name, description, quantity, threshold, created_at, updated_at
		FROM stock_items ` + tail

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock items: %w", err)
	}
	defer rows.Close()

	var items []stock.Item
	for rows.Next() {
		var item stock.Item
		if err := rows.Scan(
			&item.ID, &item.SKU, &item.Name, &item.Description, &item.Quantity, &item.Threshold,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stock item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *stockRepository) AdjustItemQuantity(ctx context.Context, id string, delta int) (stock.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE stock_items
		SET quantity = quantity + $2, updated_at = NOW()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING id, sku, name, description, quantity, threshold, created_at, updated_at
	`

	var item stock.Item
	err := q.QueryRow(ctx, query, id, delta).Scan(
		&item.ID, &item.SKU, &item.Name, &item.Description, &item.Quantity, &item.Threshold,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the item is missing or the adjustment would go negative.
			if _, getErr := r.GetItemByID(ctx, id); getErr != nil {
				return stock.Item{}, getErr
			}
			return stock.Item{}, stock.ErrInsufficientStock
		}
		return stock.Item{}, fmt.Errorf("failed to adjust stock quantity: %w", err)
	}

	return item, nil
}

func (r *stockRepository) UpsertAllocation(ctx context.Context, a stock.Allocation) (stock.Allocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stock_allocations (id, engineer_id, item_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (engineer_id, item_id) DO UPDATE SET
			quantity = stock_allocations.quantity + EXCLUDED.quantity,
			updated_at = NOW()
		RETURNING id, engineer_id, item_id, quantity, updated_at
	`

	var saved stock.Allocation
	err := q.QueryRow(ctx, query, uuid.NewString(), a.EngineerID, a.ItemID, a.Quantity).Scan(
		&saved.ID, &saved.EngineerID, &saved.ItemID, &saved.Quantity, &saved.UpdatedAt,
	)
	if err != nil {
		return stock.Allocation{}, fmt.Errorf("failed to upsert stock allocation: %w", err)
	}

	return saved, nil
}

func (r *stockRepository) ListAllocationsByEngineer(ctx context.Context, engineerID string) ([]stock.Allocation, error) {
	return r.listAllocations(ctx, "WHERE sa.engineer_id = $1 ORDER BY si.name", engineerID)
}

func (r *stockRepository) ListLowAllocations(ctx context.Context) ([]stock.Allocation, error) {
	return r.listAllocations(ctx, "WHERE sa.quantity <= si.threshold ORDER BY sa.quantity")
}

func (r *stockRepository) listAllocations(ctx context.Context, tail string, args ...interface{}) ([]stock.Allocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.engineer_id, sa.item_id, sa.quantity, sa.updated_at, si.name, si.threshold
		FROM stock_allocations sa
		JOIN stock_items si ON si.id = sa.item_id
		` + tail

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock allocations: %w", err)
	}
	defer rows.Close()

	var result []stock.Allocation
	for rows.Next() {
		var a stock.Allocation
		if err := rows.Scan(&a.ID, &a.EngineerID, &a.ItemID, &a.Quantity, &a.UpdatedAt, &a.ItemName, &a.ItemThreshold); err != nil {
			return nil, fmt.Errorf("failed to scan stock allocation: %w", err)
		}
		result = append(result, a)
	}

	return result, rows.Err()
}
