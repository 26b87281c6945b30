package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]*Product, error)
	ListLowStock(ctx context.Context) ([]*Product, error)
	UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type service struct {
	repo            Repository
	defaultCurrency string
}

// NewService creates a new catalog service.
func NewService(repo Repository, defaultCurrency string) Service {
	return &service{repo: repo, defaultCurrency: defaultCurrency}
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.SKU == "" {
		return nil, fmt.Errorf("sku is required")
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if err := validatePrices(req.CustomerPrice, req.DealerPrice, req.DistributorCost); err != nil {
		return nil, err
	}
	if req.StockQuantity < 0 {
		return nil, fmt.Errorf("stock_quantity cannot be negative")
	}
	if req.LowStockThreshold < 0 {
		return nil, fmt.Errorf("low_stock_threshold cannot be negative")
	}

	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}
	p := &Product{
		ID:                uuid.New(),
		SKU:               req.SKU,
		Name:              req.Name,
		Category:          req.Category,
		CustomerPrice:     req.CustomerPrice,
		DealerPrice:       req.DealerPrice,
		DistributorCost:   req.DistributorCost,
		Currency:          currency,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          true,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}
	return s.repo.GetProduct(ctx, uid)
}

func (s *service) ListProducts(ctx context.Context, activeOnly bool) ([]*Product, error) {
	return s.repo.ListProducts(ctx, activeOnly)
}

func (s *service) ListLowStock(ctx context.Context) ([]*Product, error) {
	return s.repo.ListLowStock(ctx)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}
	p, err := s.repo.GetProduct(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}
	if err := validatePrices(req.CustomerPrice, req.DealerPrice, req.DistributorCost); err != nil {
		return nil, err
	}
	if req.LowStockThreshold < 0 {
		return nil, fmt.Errorf("low_stock_threshold cannot be negative")
	}

	p.Name = req.Name
	p.Category = req.Category
	p.CustomerPrice = req.CustomerPrice
	p.DealerPrice = req.DealerPrice
	p.DistributorCost = req.DistributorCost
	p.LowStockThreshold = req.LowStockThreshold
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) SetActive(ctx context.Context, id string, active bool) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid product id: %w", err)
	}
	return s.repo.SetActive(ctx, uid, active)
}

func validatePrices(customer, dealer, cost float64) error {
	if customer < 0 || dealer < 0 || cost < 0 {
		return fmt.Errorf("prices cannot be negative")
	}
	return nil
}
