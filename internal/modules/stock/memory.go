package stock

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type entry struct {
	mu  sync.Mutex
	qty int
}

// MemoryLedger is an in-process Ledger keyed by product id. Each product has
// its own lock, so reservations for unrelated products never serialize
// against each other.
type MemoryLedger struct {
	mu sync.RWMutex
	m  map[uuid.UUID]*entry
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{m: make(map[uuid.UUID]*entry)}
}

// SetStock sets the available quantity for a product, creating it if needed.
func (l *MemoryLedger) SetStock(productID uuid.UUID, quantity int) {
	e := l.get(productID)
	e.mu.Lock()
	e.qty = quantity
	e.mu.Unlock()
}

// Stock returns the current available quantity for a product.
func (l *MemoryLedger) Stock(productID uuid.UUID) int {
	l.mu.RLock()
	e, ok := l.m[productID]
	l.mu.RUnlock()
	if !ok {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.qty
}

func (l *MemoryLedger) Reserve(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("reserve quantity must be positive, got %d", quantity)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	e := l.get(productID)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.qty < quantity {
		return &InsufficientStockError{ProductID: productID, Requested: quantity}
	}
	e.qty -= quantity
	return nil
}

func (l *MemoryLedger) Release(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("release quantity must be positive, got %d", quantity)
	}
	e := l.get(productID)
	e.mu.Lock()
	e.qty += quantity
	e.mu.Unlock()
	return nil
}

// get returns the entry for a product, creating it lazily with zero stock.
func (l *MemoryLedger) get(productID uuid.UUID) *entry {
	l.mu.RLock()
	e, ok := l.m[productID]
	l.mu.RUnlock()
	if ok {
		return e
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok = l.m[productID]; ok {
		return e
	}
	e = &entry{}
	l.m[productID] = e
	return e
}
