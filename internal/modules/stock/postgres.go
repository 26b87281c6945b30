package stock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type postgresLedger struct{ db *sql.DB }

// NewPostgresLedger creates a ledger backed by the products table.
func NewPostgresLedger(db *sql.DB) Ledger { return &postgresLedger{db: db} }

// Reserve performs a conditional decrement. The WHERE guard makes the
// check-and-decrement a single atomic statement on the product row, so two
// concurrent reservations can never jointly overdraw stock.
func (l *postgresLedger) Reserve(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("reserve quantity must be positive, got %d", quantity)
	}
	res, err := l.db.ExecContext(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity - $2, updated_at = $3
		WHERE id = $1 AND stock_quantity >= $2`,
		productID, quantity, time.Now())
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}
	if n == 0 {
		return &InsufficientStockError{ProductID: productID, Requested: quantity}
	}
	return nil
}

// Release adds a previously reserved quantity back unconditionally.
func (l *postgresLedger) Release(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("release quantity must be positive, got %d", quantity)
	}
	res, err := l.db.ExecContext(ctx, `
		UPDATE products
		SET stock_quantity = stock_quantity + $2, updated_at = $3
		WHERE id = $1`,
		productID, quantity, time.Now())
	if err != nil {
		return fmt.Errorf("release stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release stock: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("release stock: product %s not found", productID)
	}
	return nil
}
