package models

import "errors"

// Request-scoped errors surfaced as 4xx responses. Anything not listed
// here is treated as an internal failure by the handlers.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrItemNotFound     = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")

	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidTransition  = errors.New("order status transition not allowed")
	ErrInvalidPayment     = errors.New("invalid payment method")
	ErrDuplicateCartEntry = errors.New("cart item already exists")
)
