// Package stock provides the stock ledger: an atomic reserve/release counter
// over product stock. The ledger knows nothing about orders.
package stock

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInsufficientStock is returned when a reservation would drive a
// product's stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError carries the offending product so callers can point
// at the exact line that failed.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (requested %d)", e.ProductID, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// Ledger exposes atomic stock reservation and its compensating release.
//
// Reserve must be linearizable per product: checking stock and decrementing
// it is one indivisible step with respect to concurrent reservations against
// the same product. Release restores a quantity previously reserved and is
// only called to undo a reservation that will not be committed.
type Ledger interface {
	Reserve(ctx context.Context, productID uuid.UUID, quantity int) error
	Release(ctx context.Context, productID uuid.UUID, quantity int) error
}
