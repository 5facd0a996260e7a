package service

import (
	"errors"
	"fmt"
)

var (
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInvalidQuantity   = errors.New("the quantity must be larger than zero")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError carries what the boundary layer needs for a
// user-facing message. errors.Is(err, ErrInsufficientStock) matches it.
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("there are only %d items available for %s", e.Available, e.ProductName)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
