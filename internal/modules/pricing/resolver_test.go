package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/kasonde/distrohub-backend/internal/modules/catalog"
	"github.com/kasonde/distrohub-backend/internal/modules/firm"
)

func pct(v float64) *float64 { return &v }

func testProduct() *catalog.Product {
	return &catalog.Product{
		ID:            uuid.New(),
		CustomerPrice: 60.00,
		DealerPrice:   50.00,
	}
}

func TestResolvePrice(t *testing.T) {
	resolver := NewResolver()

	tests := []struct {
		name         string
		firm         firm.Firm
		product      *catalog.Product
		wantUnit     float64
		wantDiscount float64
		wantErr      error
	}{
		{
			name:         "dealer with 10 percent special discount",
			firm:         firm.Firm{Class: firm.ClassDealer, SpecialDiscountPct: pct(10)},
			product:      testProduct(),
			wantUnit:     45.00,
			wantDiscount: 10,
		},
		{
			name:         "customer without discount pays customer price",
			firm:         firm.Firm{Class: firm.ClassCustomer},
			product:      testProduct(),
			wantUnit:     60.00,
			wantDiscount: 0,
		},
		{
			name:         "dealer without discount pays dealer price",
			firm:         firm.Firm{Class: firm.ClassDealer},
			product:      testProduct(),
			wantUnit:     50.00,
			wantDiscount: 0,
		},
		{
			name:    "unknown class is an error not a default",
			firm:    firm.Firm{Class: "WHOLESALER"},
			product: testProduct(),
			wantErr: ErrInvalidBuyerClass,
		},
		{
			name:    "missing base price",
			firm:    firm.Firm{Class: firm.ClassDealer},
			product: &catalog.Product{ID: uuid.New(), CustomerPrice: 60.00, DealerPrice: 0},
			wantErr: ErrPriceUnavailable,
		},
		{
			name:    "negative base price",
			firm:    firm.Firm{Class: firm.ClassCustomer},
			product: &catalog.Product{ID: uuid.New(), CustomerPrice: -1},
			wantErr: ErrPriceUnavailable,
		},
		{
			name:    "discount above 100 is rejected not clamped",
			firm:    firm.Firm{Class: firm.ClassCustomer, SpecialDiscountPct: pct(120)},
			product: testProduct(),
			wantErr: ErrInvalidDiscount,
		},
		{
			name:    "negative discount is rejected",
			firm:    firm.Firm{Class: firm.ClassCustomer, SpecialDiscountPct: pct(-5)},
			product: testProduct(),
			wantErr: ErrInvalidDiscount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, discount, err := resolver.ResolvePrice(&tt.firm, tt.product, 1)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ResolvePrice() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if math.Abs(unit-tt.wantUnit) > 0.001 {
				t.Errorf("unit price = %v, want %v", unit, tt.wantUnit)
			}
			if discount != tt.wantDiscount {
				t.Errorf("discount = %v, want %v", discount, tt.wantDiscount)
			}
		})
	}
}

func TestResolvePriceIgnoresQuantity(t *testing.T) {
	resolver := NewResolver()
	f := &firm.Firm{Class: firm.ClassDealer, SpecialDiscountPct: pct(10)}
	p := testProduct()

	one, _, err := resolver.ResolvePrice(f, p, 1)
	if err != nil {
		t.Fatalf("ResolvePrice() error = %v", err)
	}
	thousand, _, err := resolver.ResolvePrice(f, p, 1000)
	if err != nil {
		t.Fatalf("ResolvePrice() error = %v", err)
	}
	if one != thousand {
		t.Errorf("quantity changed unit price: %v vs %v", one, thousand)
	}
}

func TestResolvePriceDeterministic(t *testing.T) {
	resolver := NewResolver()
	f := &firm.Firm{Class: firm.ClassCustomer, SpecialDiscountPct: pct(7.5)}
	p := testProduct()

	a, da, err := resolver.ResolvePrice(f, p, 4)
	if err != nil {
		t.Fatalf("ResolvePrice() error = %v", err)
	}
	b, db, err := resolver.ResolvePrice(f, p, 4)
	if err != nil {
		t.Fatalf("ResolvePrice() error = %v", err)
	}
	if a != b || da != db {
		t.Errorf("repeated calls differ: (%v,%v) vs (%v,%v)", a, da, b, db)
	}
}
