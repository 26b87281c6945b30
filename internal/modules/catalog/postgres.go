package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `id,sku,name,category,customer_price,dealer_price,distributor_cost,
	currency,stock_quantity,low_stock_threshold,is_active,created_at,updated_at`

func (r *postgresRepo) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	return scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id=$1`, id))
}

func (r *postgresRepo) GetProductBySKU(ctx context.Context, sku string) (*Product, error) {
	return scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE sku=$1`, sku))
}

func (r *postgresRepo) ListProducts(ctx context.Context, activeOnly bool) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if activeOnly {
		query += ` WHERE is_active=true`
	}
	query += ` ORDER BY name ASC`
	return r.queryProducts(ctx, query)
}

func (r *postgresRepo) ListLowStock(ctx context.Context) ([]*Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE is_active=true AND stock_quantity <= low_stock_threshold
		ORDER BY stock_quantity ASC`)
}

func (r *postgresRepo) CreateProduct(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id,sku,name,category,customer_price,dealer_price,distributor_cost,
		   currency,stock_quantity,low_stock_threshold,is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.SKU, p.Name, p.Category, p.CustomerPrice, p.DealerPrice,
		p.DistributorCost, p.Currency, p.StockQuantity, p.LowStockThreshold, p.IsActive)
	return err
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products SET name=$1, category=$2, customer_price=$3, dealer_price=$4,
		       distributor_cost=$5, low_stock_threshold=$6, updated_at=$7
		WHERE id=$8`,
		p.Name, p.Category, p.CustomerPrice, p.DealerPrice,
		p.DistributorCost, p.LowStockThreshold, time.Now(), p.ID)
	return err
}

func (r *postgresRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE products SET is_active=$1, updated_at=$2 WHERE id=$3`,
		active, time.Now(), id)
	return err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanProduct(row *sql.Row) (*Product, error) {
	p := &Product{}
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Category,
		&p.CustomerPrice, &p.DealerPrice, &p.DistributorCost,
		&p.Currency, &p.StockQuantity, &p.LowStockThreshold,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Category,
			&p.CustomerPrice, &p.DealerPrice, &p.DistributorCost,
			&p.Currency, &p.StockQuantity, &p.LowStockThreshold,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
