package firm

import (
	"time"

	"github.com/google/uuid"
)

// Class determines which base price table applies to a firm's orders.
type Class string

const (
	ClassCustomer Class = "CUSTOMER"
	ClassDealer   Class = "DEALER"
)

// Status is the lifecycle state of a firm.
type Status string

const (
	StatusProspect Status = "PROSPECT"
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Firm is a buyer: a direct customer or a sub-dealer.
type Firm struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Class              Class     `json:"class"`
	SpecialDiscountPct *float64  `json:"special_discount_pct,omitempty"`
	Status             Status    `json:"status"`
	Category           string    `json:"category"`
	Tags               []string  `json:"tags,omitempty"`
	PriorityScore      int       `json:"priority_score"`
	PaymentTermsDays   int       `json:"payment_terms_days"`
	Email              string    `json:"email,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	City               string    `json:"city,omitempty"`
	Country            string    `json:"country,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// OnboardRequest holds data for registering a prospective buyer.
type OnboardRequest struct {
	Name             string   `json:"name"`
	Class            string   `json:"class"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	PaymentTermsDays int      `json:"payment_terms_days"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	City             string   `json:"city"`
	Country          string   `json:"country"`
}

// UpdateFirmRequest holds editable firm fields.
type UpdateFirmRequest struct {
	Name               string   `json:"name"`
	SpecialDiscountPct *float64 `json:"special_discount_pct"`
	PaymentTermsDays   int      `json:"payment_terms_days"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	City               string   `json:"city"`
	Country            string   `json:"country"`
}
