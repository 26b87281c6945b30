// Package pricing resolves the authoritative unit net price for one product
// line, given the buyer's class and any per-firm discount override.
package pricing

import (
	"errors"
	"fmt"

	"github.com/kasonde/distrohub-backend/internal/modules/catalog"
	"github.com/kasonde/distrohub-backend/internal/modules/firm"
)

// Sentinel errors. Both are terminal for the order line, not retryable.
var (
	// ErrInvalidBuyerClass means the firm record carries a class outside
	// the known set. Never silently defaulted.
	ErrInvalidBuyerClass = errors.New("invalid buyer class")

	// ErrPriceUnavailable means the product has no usable base price for
	// the buyer's class.
	ErrPriceUnavailable = errors.New("no base price available for buyer class")

	// ErrInvalidDiscount means the firm record carries a discount outside
	// [0,100]. The firm layer rejects these at write time; the resolver
	// refuses to price against one rather than clamping.
	ErrInvalidDiscount = errors.New("special discount out of range")
)

// Resolver computes unit net prices. It is pure: identical inputs always
// yield identical output.
type Resolver struct{}

// NewResolver creates a price resolver.
func NewResolver() *Resolver { return &Resolver{} }

// ResolvePrice returns the unit net price and the discount percentage that
// was applied for one line of quantity units.
//
// The class selects the base price table; a non-nil special discount on the
// firm overrides the class default of zero. Quantity does not currently
// affect price; there are no volume breakpoints.
func (r *Resolver) ResolvePrice(f *firm.Firm, p *catalog.Product, quantity int) (unitNetPrice, appliedDiscountPct float64, err error) {
	var base float64
	switch f.Class {
	case firm.ClassDealer:
		base = p.DealerPrice
	case firm.ClassCustomer:
		base = p.CustomerPrice
	default:
		return 0, 0, fmt.Errorf("%w: %q on firm %s", ErrInvalidBuyerClass, f.Class, f.ID)
	}
	if base <= 0 {
		return 0, 0, fmt.Errorf("%w: product %s, class %s", ErrPriceUnavailable, p.ID, f.Class)
	}

	var discount float64
	if f.SpecialDiscountPct != nil {
		discount = *f.SpecialDiscountPct
		if discount < 0 || discount > 100 {
			return 0, 0, fmt.Errorf("%w: %.2f on firm %s", ErrInvalidDiscount, discount, f.ID)
		}
	}

	return base * (1 - discount/100), discount, nil
}
