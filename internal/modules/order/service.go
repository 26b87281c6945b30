package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kasonde/distrohub-backend/internal/modules/catalog"
	"github.com/kasonde/distrohub-backend/internal/modules/firm"
	"github.com/kasonde/distrohub-backend/internal/modules/pricing"
	"github.com/kasonde/distrohub-backend/internal/modules/stock"
)

// Service defines the order management business logic.
type Service interface {
	// PlaceOrder validates the request, resolves a unit price per line,
	// reserves stock, and persists the order with its lines as one atomic
	// unit. On any failure it releases every reservation taken in the
	// attempt and leaves no trace.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error)

	GetOrder(ctx context.Context, id string) (*Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)
	ListFirmOrders(ctx context.Context, firmID string, status string) ([]*Order, error)

	// UpdateStatus advances an order to a new lifecycle status.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error)

	// CancelOrder cancels a PENDING or CONFIRMED order. Cancellation is a
	// status change only; committed stock movements are corrected through
	// the catalog workflow, not the ledger.
	CancelOrder(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	firmRepo    firm.Repository
	catalogRepo catalog.Repository
	ledger      stock.Ledger
	resolver    *pricing.Resolver
	vatRate     float64
	currency    string
	log         *slog.Logger
}

// NewService creates a new order service.
func NewService(repo Repository, firmRepo firm.Repository, catalogRepo catalog.Repository,
	ledger stock.Ledger, resolver *pricing.Resolver, vatRate float64, currency string,
	log *slog.Logger) Service {
	return &service{
		repo:        repo,
		firmRepo:    firmRepo,
		catalogRepo: catalogRepo,
		ledger:      ledger,
		resolver:    resolver,
		vatRate:     vatRate,
		currency:    currency,
		log:         log,
	}
}

// validTransitions defines the allowed status state machine.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// reservation records one successful ledger decrement so it can be undone.
type reservation struct {
	productID uuid.UUID
	quantity  int
}

func (s *service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	// ── Validate: rejected before any side effect ─────────────────────────────
	if len(req.Lines) == 0 {
		return nil, ErrEmptyOrder
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, ErrMissingAddress
	}
	firmID, err := uuid.Parse(req.FirmID)
	if err != nil {
		return nil, fmt.Errorf("invalid firm_id: %w", err)
	}
	creatorID, err := uuid.Parse(req.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("invalid creator_id: %w", err)
	}
	source := Source(strings.ToUpper(req.Source))
	if source == "" {
		source = SourceInternal
	}
	if source != SourceInternal && source != SourcePortal {
		return nil, fmt.Errorf("invalid source channel %q", req.Source)
	}
	for _, lr := range req.Lines {
		if lr.Quantity <= 0 {
			pid, perr := uuid.Parse(lr.ProductID)
			if perr != nil {
				return nil, fmt.Errorf("invalid product_id: %w", perr)
			}
			return nil, &LineError{Err: ErrInvalidQuantity, ProductID: pid}
		}
	}

	buyer, err := s.firmRepo.GetFirm(ctx, firmID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrBuyerNotFound, req.FirmID)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup buyer %s: %w", req.FirmID, err)
	}
	if buyer.Status != firm.StatusActive {
		return nil, fmt.Errorf("%w: firm %s is %s", ErrBuyerInactive, buyer.ID, buyer.Status)
	}

	// ── Price each line; no reservations taken yet ────────────────────────────
	var lines []*OrderLine
	var netTotal float64
	for _, lr := range req.Lines {
		pid, err := uuid.Parse(lr.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product_id: %w", err)
		}
		product, err := s.catalogRepo.GetProduct(ctx, pid)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &LineError{Err: ErrProductNotFound, ProductID: pid}
		}
		if err != nil {
			return nil, fmt.Errorf("lookup product %s: %w", pid, err)
		}
		if !product.IsActive {
			return nil, &LineError{Err: ErrProductInactive, ProductID: pid}
		}

		var unitNet, discount float64
		if lr.UnitPriceOverride != nil {
			// Privileged manual-price path: bypasses the resolver,
			// keeps every other guarantee.
			unitNet = *lr.UnitPriceOverride
			if unitNet <= 0 {
				return nil, &LineError{Err: pricing.ErrPriceUnavailable, ProductID: pid}
			}
		} else {
			unitNet, discount, err = s.resolver.ResolvePrice(buyer, product, lr.Quantity)
			if err != nil {
				return nil, &LineError{Err: err, ProductID: pid}
			}
		}

		lineNet := round2(float64(lr.Quantity) * unitNet)
		netTotal += lineNet
		lines = append(lines, &OrderLine{
			ID:           uuid.New(),
			ProductID:    pid,
			Quantity:     lr.Quantity,
			UnitNetPrice: unitNet,
			DiscountPct:  discount,
			LineNetTotal: lineNet,
		})
	}

	// ── Reserve stock, compensating on partial failure ────────────────────────
	var reserved []reservation
	for _, line := range lines {
		if err := s.ledger.Reserve(ctx, line.ProductID, line.Quantity); err != nil {
			s.releaseAll(ctx, reserved)
			return nil, &LineError{Err: err, ProductID: line.ProductID}
		}
		reserved = append(reserved, reservation{productID: line.ProductID, quantity: line.Quantity})
	}

	// A cancelled caller must not leak its reservations.
	if err := ctx.Err(); err != nil {
		s.releaseAll(ctx, reserved)
		return nil, fmt.Errorf("order placement cancelled: %w", err)
	}

	// ── Build and durably commit header + lines ───────────────────────────────
	o := &Order{
		ID:              uuid.New(),
		FirmID:          firmID,
		CreatorID:       creatorID,
		OrderNumber:     generateOrderNumber(),
		Status:          StatusPending,
		Source:          source,
		DeliveryAddress: req.DeliveryAddress,
		NetTotal:        round2(netTotal),
		VATRate:         s.vatRate,
		GrossTotal:      round2(netTotal * (1 + s.vatRate)),
		Currency:        s.currency,
		Lines:           lines,
	}
	for _, line := range lines {
		line.OrderID = o.ID
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		// The ledger must never stay decremented for an order that does
		// not exist.
		s.releaseAll(ctx, reserved)
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return o, nil
}

// releaseAll undoes reservations in reverse order. It runs on a context
// detached from the caller so cancellation cannot skip the rollback, and a
// release failure is surfaced as a reconciliation alert instead of masking
// the original error.
func (s *service) releaseAll(ctx context.Context, reserved []reservation) {
	ctx = context.WithoutCancel(ctx)
	for i := len(reserved) - 1; i >= 0; i-- {
		r := reserved[i]
		if err := s.ledger.Release(ctx, r.productID, r.quantity); err != nil {
			s.log.Error("stock release failed, manual reconciliation required",
				"product_id", r.productID.String(),
				"quantity", r.quantity,
				"error", err.Error())
		}
	}
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order id: %w", err)
	}
	return s.repo.GetOrderByID(ctx, uid)
}

func (s *service) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return s.repo.GetOrderByNumber(ctx, orderNumber)
}

func (s *service) ListFirmOrders(ctx context.Context, firmID string, status string) ([]*Order, error) {
	uid, err := uuid.Parse(firmID)
	if err != nil {
		return nil, fmt.Errorf("invalid firm id: %w", err)
	}
	return s.repo.ListOrdersByFirm(ctx, uid, Status(strings.ToUpper(status)))
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order id: %w", err)
	}
	o, err := s.repo.GetOrderByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	newStatus := Status(strings.ToUpper(req.Status))
	valid := false
	for _, allowed := range validTransitions[o.Status] {
		if allowed == newStatus {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("cannot transition order from %s to %s", o.Status, newStatus)
	}

	if err := s.repo.UpdateStatus(ctx, uid, newStatus); err != nil {
		return nil, err
	}
	o.Status = newStatus
	return o, nil
}

func (s *service) CancelOrder(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid order id: %w", err)
	}
	o, err := s.repo.GetOrderByID(ctx, uid)
	if err != nil {
		return fmt.Errorf("order not found: %w", err)
	}
	if o.Status != StatusPending && o.Status != StatusConfirmed {
		return fmt.Errorf("only PENDING or CONFIRMED orders can be cancelled (current: %s)", o.Status)
	}
	return s.repo.UpdateStatus(ctx, uid, StatusCancelled)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// generateOrderNumber creates a human-readable order number: ORD-YYYYMMDD-XXXX
func generateOrderNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
