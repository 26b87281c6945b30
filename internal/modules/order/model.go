package order

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an order. A new order is always
// PENDING; later transitions belong to the fulfilment workflow.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// Source indicates which channel the order came in through.
type Source string

const (
	SourceInternal Source = "INTERNAL"
	SourcePortal   Source = "PORTAL"
)

// Order is a committed purchase by a firm. Totals are captured at commit
// time and never recomputed, so historical orders are immune to later
// price changes.
type Order struct {
	ID              uuid.UUID    `json:"id"`
	FirmID          uuid.UUID    `json:"firm_id"`
	CreatorID       uuid.UUID    `json:"creator_id"`
	OrderNumber     string       `json:"order_number"`
	Status          Status       `json:"status"`
	Source          Source       `json:"source"`
	DeliveryAddress string       `json:"delivery_address"`
	NetTotal        float64      `json:"net_total"`
	VATRate         float64      `json:"vat_rate"`
	GrossTotal      float64      `json:"gross_total"`
	Currency        string       `json:"currency"`
	Lines           []*OrderLine `json:"lines,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// OrderLine is one priced product/quantity pair within an order.
type OrderLine struct {
	ID           uuid.UUID `json:"id"`
	OrderID      uuid.UUID `json:"order_id"`
	ProductID    uuid.UUID `json:"product_id"`
	Quantity     int       `json:"quantity"`
	UnitNetPrice float64   `json:"unit_net_price"`
	DiscountPct  float64   `json:"discount_pct"`
	LineNetTotal float64   `json:"line_net_total"`
	CreatedAt    time.Time `json:"created_at"`
}

// LineRequest describes one requested product line. UnitPriceOverride is the
// privileged manual-price-entry path: when present it bypasses the price
// resolver but still goes through stock reservation.
type LineRequest struct {
	ProductID         string   `json:"product_id"`
	Quantity          int      `json:"quantity"`
	UnitPriceOverride *float64 `json:"unit_price_override,omitempty"`
}

// PlaceOrderRequest is the payload for creating a new order.
type PlaceOrderRequest struct {
	FirmID          string        `json:"firm_id"`
	CreatorID       string        `json:"creator_id"`
	Source          string        `json:"source"`
	DeliveryAddress string        `json:"delivery_address"`
	Lines           []LineRequest `json:"lines"`
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
