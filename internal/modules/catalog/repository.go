package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for catalog products.
type Repository interface {
	// GetProduct retrieves a product by id.
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)

	// GetProductBySKU retrieves a product by its SKU.
	GetProductBySKU(ctx context.Context, sku string) (*Product, error)

	// ListProducts returns all products, optionally restricted to active ones.
	ListProducts(ctx context.Context, activeOnly bool) ([]*Product, error)

	// ListLowStock returns active products whose stock is at or below their threshold.
	ListLowStock(ctx context.Context) ([]*Product, error)

	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, p *Product) error

	// UpdateProduct updates editable product fields.
	UpdateProduct(ctx context.Context, p *Product) error

	// SetActive flips a product's active flag.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
