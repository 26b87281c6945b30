package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// CreateOrder inserts the order header and all its lines inside a single
// transaction.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders
		  (id, firm_id, creator_id, order_number, status, source,
		   delivery_address, net_total, vat_rate, gross_total, currency)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		o.ID, o.FirmID, o.CreatorID, o.OrderNumber, o.Status, o.Source,
		o.DeliveryAddress, o.NetTotal, o.VATRate, o.GrossTotal, o.Currency)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, line := range o.Lines {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_lines
			  (id, order_id, product_id, quantity, unit_net_price, discount_pct, line_net_total)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			line.ID, o.ID, line.ProductID,
			line.Quantity, line.UnitNetPrice, line.DiscountPct, line.LineNetTotal)
		if err != nil {
			return fmt.Errorf("insert order_line: %w", err)
		}
	}

	return tx.Commit()
}

const orderColumns = `id,firm_id,creator_id,order_number,status,source,
	delivery_address,net_total,vat_rate,gross_total,currency,created_at,updated_at`

func (r *postgresRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, err
	}
	o.Lines, err = r.listLines(ctx, o.ID)
	return o, err
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number=$1`, orderNumber))
	if err != nil {
		return nil, err
	}
	o.Lines, err = r.listLines(ctx, o.ID)
	return o, err
}

func (r *postgresRepo) ListOrdersByFirm(ctx context.Context, firmID uuid.UUID, status Status) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE firm_id=$1`
	args := []interface{}{firmID}
	if status != "" {
		query += ` AND status=$2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var orders []*Order
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(&o.ID, &o.FirmID, &o.CreatorID, &o.OrderNumber,
			&o.Status, &o.Source, &o.DeliveryAddress,
			&o.NetTotal, &o.VATRate, &o.GrossTotal, &o.Currency,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now(), id)
	return err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanOrder(row *sql.Row) (*Order, error) {
	o := &Order{}
	err := row.Scan(&o.ID, &o.FirmID, &o.CreatorID, &o.OrderNumber,
		&o.Status, &o.Source, &o.DeliveryAddress,
		&o.NetTotal, &o.VATRate, &o.GrossTotal, &o.Currency,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) listLines(ctx context.Context, orderID uuid.UUID) ([]*OrderLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, unit_net_price, discount_pct, line_net_total, created_at
		FROM order_lines WHERE order_id=$1 ORDER BY created_at ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lines []*OrderLine
	for rows.Next() {
		line := &OrderLine{}
		if err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID,
			&line.Quantity, &line.UnitNetPrice, &line.DiscountPct,
			&line.LineNetTotal, &line.CreatedAt); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
