package overtime

import (
	"context"
	"time"
)

type OvertimeRepository interface {
	// Upsert writes the record for (user, date), overwriting any prior row.
	Upsert(ctx context.Context, record Record) (Record, error)

	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (Record, error)

	ListByUser(ctx context.Context, userID string, from, to time.Time) ([]Record, error)

	// SumSeconds sums overtime seconds for the user across [from, to]
	// inclusive; missing rows contribute zero, negatives are clamped.
	SumSeconds(ctx context.Context, userID string, from, to time.Time) (int64, error)
}
