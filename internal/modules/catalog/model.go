package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item in the distributor's master catalog. It carries one
// base price per buyer class plus the internal purchase cost.
type Product struct {
	ID                uuid.UUID `json:"id"`
	SKU               string    `json:"sku"`
	Name              string    `json:"name"`
	Category          string    `json:"category,omitempty"`
	CustomerPrice     float64   `json:"customer_price"`
	DealerPrice       float64   `json:"dealer_price"`
	DistributorCost   float64   `json:"distributor_cost"`
	Currency          string    `json:"currency"`
	StockQuantity     int       `json:"stock_quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CreateProductRequest holds data for adding a product to the catalog.
type CreateProductRequest struct {
	SKU               string  `json:"sku"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	CustomerPrice     float64 `json:"customer_price"`
	DealerPrice       float64 `json:"dealer_price"`
	DistributorCost   float64 `json:"distributor_cost"`
	Currency          string  `json:"currency"`
	StockQuantity     int     `json:"stock_quantity"`
	LowStockThreshold int     `json:"low_stock_threshold"`
}

// UpdateProductRequest holds editable product fields.
type UpdateProductRequest struct {
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	CustomerPrice     float64 `json:"customer_price"`
	DealerPrice       float64 `json:"dealer_price"`
	DistributorCost   float64 `json:"distributor_cost"`
	LowStockThreshold int     `json:"low_stock_threshold"`
}
