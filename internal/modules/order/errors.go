package order

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors for the order placement pipeline. All are terminal for the
// PlaceOrder call; retries are a caller concern.
var (
	// Rejected before any side effect.
	ErrEmptyOrder      = errors.New("order must contain at least one line")
	ErrInvalidQuantity = errors.New("line quantity must be greater than zero")
	ErrMissingAddress  = errors.New("delivery address is required")

	// Rejected before pricing.
	ErrBuyerNotFound = errors.New("buyer not found")
	ErrBuyerInactive = errors.New("buyer is not active")

	// Rejected during pricing; no reservations taken yet.
	ErrProductNotFound = errors.New("product not found")
	ErrProductInactive = errors.New("product is not active")

	// The durable write failed after all reservations succeeded; every
	// reservation has been released (or flagged for reconciliation).
	ErrPersistenceFailure = errors.New("order could not be persisted")
)

// LineError ties a pipeline failure to the product that caused it, so the
// caller can highlight the offending line.
type LineError struct {
	Err       error
	ProductID uuid.UUID
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s (product %s)", e.Err.Error(), e.ProductID)
}

func (e *LineError) Unwrap() error { return e.Err }
