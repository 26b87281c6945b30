package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder persists a new order and all its lines atomically in one
	// transaction; a partially written order is never visible.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order with its lines.
	GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// GetOrderByNumber retrieves an order by its human-readable number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// ListOrdersByFirm returns all orders for a firm, optionally filtered by status.
	ListOrdersByFirm(ctx context.Context, firmID uuid.UUID, status Status) ([]*Order, error)

	// UpdateStatus advances an order to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}
