package stock

import "time"

// Item is a central stock item. Quantity at or below Threshold marks the
// item as low stock.
type Item struct {
	ID          string
	SKU         *string
	Name        string
	Description *string
	Quantity    int
	Threshold   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Allocation is a quantity of an item held by a field engineer.
type Allocation struct {
	ID         string
	EngineerID string
	ItemID     string
	Quantity   int
	UpdatedAt  time.Time

	// Joined fields
	ItemName      *string
	ItemThreshold *int
}

func (i Item) IsLow() bool {
	return i.Quantity <= i.Threshold
}
