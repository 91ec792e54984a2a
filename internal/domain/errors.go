package domain

import "errors"

// Rejected writes surface as one of these; callers decide how to report them.
var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateCoupon   = errors.New("coupon code already exists")
	ErrDuplicateReview   = errors.New("user already reviewed this product")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrOrderNotPending   = errors.New("order is not pending")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrBadQuantity       = errors.New("quantity must be at least 1")
	ErrBadRating         = errors.New("rating must be between 1 and 5")
)
