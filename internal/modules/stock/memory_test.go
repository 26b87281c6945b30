package stock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
)

func TestReserveAndRelease(t *testing.T) {
	ledger := NewMemoryLedger()
	pid := uuid.New()
	ledger.SetStock(pid, 10)

	if err := ledger.Reserve(context.Background(), pid, 4); err != nil {
		t.Fatalf("Reserve() error = %v", err)
	}
	if got := ledger.Stock(pid); got != 6 {
		t.Errorf("stock after reserve = %d, want 6", got)
	}

	if err := ledger.Release(context.Background(), pid, 4); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if got := ledger.Stock(pid); got != 10 {
		t.Errorf("stock after release = %d, want 10", got)
	}
}

func TestReserveInsufficient(t *testing.T) {
	ledger := NewMemoryLedger()
	pid := uuid.New()
	ledger.SetStock(pid, 3)

	err := ledger.Reserve(context.Background(), pid, 4)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("Reserve() error = %v, want ErrInsufficientStock", err)
	}
	var insuff *InsufficientStockError
	if !errors.As(err, &insuff) {
		t.Fatalf("Reserve() error type = %T, want *InsufficientStockError", err)
	}
	if insuff.ProductID != pid {
		t.Errorf("error names product %s, want %s", insuff.ProductID, pid)
	}
	if got := ledger.Stock(pid); got != 3 {
		t.Errorf("failed reserve changed stock: %d, want 3", got)
	}
}

func TestReserveUnknownProduct(t *testing.T) {
	ledger := NewMemoryLedger()
	err := ledger.Reserve(context.Background(), uuid.New(), 1)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("Reserve() on unknown product = %v, want ErrInsufficientStock", err)
	}
}

func TestReserveRejectsNonPositiveQuantity(t *testing.T) {
	ledger := NewMemoryLedger()
	pid := uuid.New()
	ledger.SetStock(pid, 5)

	for _, qty := range []int{0, -3} {
		if err := ledger.Reserve(context.Background(), pid, qty); err == nil {
			t.Errorf("Reserve(qty=%d) expected error, got nil", qty)
		}
	}
}

// Concurrent reservations with combined quantity exceeding stock: exactly
// enough succeed to exhaust stock, the rest fail, never negative.
func TestConcurrentReserveExhaustsExactly(t *testing.T) {
	ledger := NewMemoryLedger()
	pid := uuid.New()
	const stock = 50
	const callers = 200
	ledger.SetStock(pid, stock)

	var succeeded, failed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := ledger.Reserve(context.Background(), pid, 1)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, ErrInsufficientStock):
				failed.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded.Load() != stock {
		t.Errorf("successful reservations = %d, want %d", succeeded.Load(), stock)
	}
	if failed.Load() != callers-stock {
		t.Errorf("failed reservations = %d, want %d", failed.Load(), callers-stock)
	}
	if got := ledger.Stock(pid); got != 0 {
		t.Errorf("final stock = %d, want 0", got)
	}
}

func TestConcurrentSingleUnit(t *testing.T) {
	ledger := NewMemoryLedger()
	pid := uuid.New()
	ledger.SetStock(pid, 1)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- ledger.Reserve(context.Background(), pid, 1)
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		if err == nil {
			ok++
		} else if errors.Is(err, ErrInsufficientStock) {
			insufficient++
		}
	}
	if ok != 1 || insufficient != 1 {
		t.Errorf("got %d successes and %d stock failures, want exactly 1 and 1", ok, insufficient)
	}
	if got := ledger.Stock(pid); got != 0 {
		t.Errorf("final stock = %d, want 0", got)
	}
}

func TestUnrelatedProductsDoNotInterfere(t *testing.T) {
	ledger := NewMemoryLedger()
	a, b := uuid.New(), uuid.New()
	ledger.SetStock(a, 100)
	ledger.SetStock(b, 100)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = ledger.Reserve(context.Background(), a, 1)
		}()
		go func() {
			defer wg.Done()
			_ = ledger.Reserve(context.Background(), b, 1)
		}()
	}
	wg.Wait()

	if got := ledger.Stock(a); got != 0 {
		t.Errorf("product A stock = %d, want 0", got)
	}
	if got := ledger.Stock(b); got != 0 {
		t.Errorf("product B stock = %d, want 0", got)
	}
}
