package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Checkout errors
	ErrSeatConflict      = errors.New("seat already taken")
	ErrInvalidSeat       = errors.New("seat outside hall capacity")
	ErrInvalidSchedule   = errors.New("invalid schedule")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrProductNotFound   = errors.New("product not found")
	ErrEmptyOrder        = errors.New("order has no items")

	// Cancellation errors
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")

	// Pricing admin errors
	ErrUnknownHall         = errors.New("unknown hall")
	ErrInvalidPrice        = errors.New("price must be positive")
	ErrInvalidDiscountRate = errors.New("discount rate must be between 0 and 100")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
