package stock

import "errors"

var (
	ErrItemNotFound       = errors.New("stock item not found")
	ErrAllocationNotFound = errors.New("stock allocation not found")
	ErrInsufficientStock  = errors.New("insufficient stock quantity")
)
