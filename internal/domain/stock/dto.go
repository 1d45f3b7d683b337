package stock

import "github.com/fieldhr/hrms-backend-go/internal/pkg/validator"

type UpsertItemRequest struct {
	SKU         *string `json:"sku,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	Threshold   int     `json:"threshold"`
}

func (r *UpsertItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be non-negative"})
	}
	if r.Threshold < 0 {
		errs = append(errs, validator.ValidationError{Field: "threshold", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AllocateRequest struct {
	EngineerID string `json:"engineer_id"`
	ItemID     string `json:"item_id"`
	Quantity   int    `json:"quantity"`
}

func (r *AllocateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EngineerID == "" {
		errs = append(errs, validator.ValidationError{Field: "engineer_id", Message: "is required"})
	}
	if r.ItemID == "" {
		errs = append(errs, validator.ValidationError{Field: "item_id", Message: "is required"})
	}
	if r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ItemResponse struct {
	ID          string  `json:"id"`
	SKU         *string `json:"sku,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	Threshold   int     `json:"threshold"`
	Low         bool    `json:"low"`
}

// LowStockReport lists every central item and engineer allocation sitting at
// or below its threshold.
type LowStockReport struct {
	Items       []ItemResponse       `json:"items"`
	Allocations []AllocationResponse `json:"allocations"`
}

type AllocationResponse struct {
	ID         string  `json:"id"`
	EngineerID string  `json:"engineer_id"`
	ItemID     string  `json:"item_id"`
	ItemName   *string `json:"item_name,omitempty"`
	Quantity   int     `json:"quantity"`
}

func ToItemResponse(i Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		SKU:         i.SKU,
		Name:        i.Name,
		Description: i.Description,
		Quantity:    i.Quantity,
		Threshold:   i.Threshold,
		Low:         i.IsLow(),
	}
}

func ToAllocationResponse(a Allocation) AllocationResponse {
	return AllocationResponse{
		ID:         a.ID,
		EngineerID: a.EngineerID,
		ItemID:     a.ItemID,
		ItemName:   a.ItemName,
		Quantity:   a.Quantity,
	}
}
